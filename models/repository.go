package models

import "encoding/json"

type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt 雜湊，永遠不回傳給 client
}

// Count 是 attendees 欄位：前端有時送數字有時送字串，兩種都收
// （JSON 數字 0 視同沒填，跟原本前端的 falsy 檢查一致）
type Count string

func (c *Count) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = Count(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if n.String() == "0" {
		*c = ""
		return nil
	}
	*c = Count(n.String())
	return nil
}

type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // 存機器格式 "2006-01-02"，列表輸出前才轉顯示字串
	Time        string `json:"time"` // "15:04:05"
	Location    string `json:"location"`
	Attendees   Count  `json:"attendees"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// ===== Users =====
// 找不到的情況一律把 sql.ErrNoRows 原樣往上丟，語意（401 還是「可以註冊」）由 handler 決定
type UserRepository interface {
	FindByEmail(email string) (User, error)
	Insert(u *User) error
}

// ===== Events =====
type EventRepository interface {
	FindByTitle(title string) (Event, error)
	Insert(e *Event) error
	AllByTitleDesc() ([]Event, error)
	UpdateByID(e *Event) (int64, error) // 回傳 affected rows，0 不算錯
	DeleteByID(id int64) (int64, error)
}
