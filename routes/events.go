package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventapi/models"
)

/* -------------------- Events -------------------- */

type eventRequest struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Location    string       `json:"location"`
	Attendees   models.Count `json:"attendees"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Status      string       `json:"status"`
}

// 八個欄位全必填，空字串（含 falsy 的數字 0）都擋下來
func (r *eventRequest) complete() bool {
	return r.Title != "" && r.Date != "" && r.Time != "" && r.Location != "" &&
		r.Attendees != "" && r.Description != "" && r.Category != "" && r.Status != ""
}

func (r *eventRequest) toEvent() models.Event {
	return models.Event{
		ID:          r.ID,
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Attendees:   r.Attendees,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
	}
}

// POST /send-event
func (d *deps) sendEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if !req.complete() {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}

	// title 的重複檢查只有 pre-check（沿用原系統）；同時送兩筆同名有機會都過
	_, err := d.events.FindByTitle(req.Title)
	if err == nil {
		fail(c, http.StatusConflict, "Event already exists")
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		failInternal(c, "An error occurred during event. Please try again.", err)
		return
	}

	ev := req.toEvent()
	if err := d.events.Insert(&ev); err != nil {
		failInternal(c, "An error occurred during event. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, envelope{Success: true, Message: "Event added successfully"})
}

// GET /events-data
func (d *deps) eventsData(c *gin.Context) {
	events, err := d.events.AllByTitleDesc()
	if err != nil {
		failInternal(c, "An error occurred during event. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, eventsResponse{
		envelope: envelope{Success: true},
		Events:   models.FormatEvents(events),
	})
}

// PUT /update-event/:event_id
// 注意：查詢用的 key 是 body 的 id，路徑的 :event_id 沒被用到——
// 原系統就是這樣，疑似 bug 但照樣保留，別自作主張統一兩邊
func (d *deps) updateEvent(c *gin.Context) {
	_ = c.Param("event_id")

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Could not parse request data.")
		return
	}

	ev := req.toEvent()
	// 不做存在檢查：id 沒中任何 row 一樣回成功（0 rows affected）
	if _, err := d.events.UpdateByID(&ev); err != nil {
		failInternal(c, "An error occurred during event update. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, envelope{Success: true, Message: "Event updated successfully"})
}

// DELETE /delete-event/:event_id
func (d *deps) deleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("event_id"), 10, 64)
	if err != nil {
		// 原系統把非數字 id 原封丟給 DB 吃錯誤，這裡提前擋下但回同一種 500
		failInternal(c, "An error occurred during event deletion. Please try again.", err)
		return
	}

	// 同樣不做存在檢查：刪不存在的 id 也回成功
	if _, err := d.events.DeleteByID(id); err != nil {
		failInternal(c, "An error occurred during event deletion. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, envelope{Success: true, Message: "Event deleted successfully"})
}

// GET /health
func (d *deps) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
