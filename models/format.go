package models

import (
	"strings"
	"time"
)

// FormattedEvent 是丟給前端列表用的樣子：date/time 換成顯示字串，其他欄位照舊
type FormattedEvent struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // "January 05, 2025"
	Time        string `json:"time"` // "2:30pm"
	Location    string `json:"location"`
	Attendees   Count  `json:"attendees"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// FormatEvent 純轉換、不動原本的 Event；解析不了的值原樣放行
func FormatEvent(e Event) FormattedEvent {
	return FormattedEvent{
		ID:          e.ID,
		Title:       e.Title,
		Date:        displayDate(e.Date),
		Time:        displayTime(e.Time),
		Location:    e.Location,
		Attendees:   e.Attendees,
		Description: e.Description,
		Category:    e.Category,
		Status:      e.Status,
	}
}

func FormatEvents(events []Event) []FormattedEvent {
	out := make([]FormattedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, FormatEvent(e))
	}
	return out
}

func displayDate(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format("January 02, 2006")
}

func displayTime(raw string) string {
	t, err := time.Parse("15:04:05", raw)
	if err != nil {
		// 前端偶爾只送 "HH:MM"
		t, err = time.Parse("15:04", raw)
		if err != nil {
			return raw
		}
	}
	return strings.ToLower(t.Format("3:04pm"))
}
