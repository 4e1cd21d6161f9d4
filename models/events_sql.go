package models

import "database/sql"

type sqlEventRepo struct{ db *sql.DB }

func NewSQLEventRepository(db *sql.DB) EventRepository { return &sqlEventRepo{db} }

// date/time 用 ::text 取出，維持 "2006-01-02" / "15:04:05" 的機器格式
const eventColumns = `id, title, date::text, time::text, location, attendees, description, category, status`

func scanEvent(row interface{ Scan(...any) error }) (Event, error) {
	var e Event
	err := row.Scan(&e.ID, &e.Title, &e.Date, &e.Time, &e.Location,
		&e.Attendees, &e.Description, &e.Category, &e.Status)
	return e, err
}

func (r *sqlEventRepo) FindByTitle(title string) (Event, error) {
	return scanEvent(r.db.QueryRow(
		`SELECT `+eventColumns+` FROM events WHERE title=$1`, title))
}

func (r *sqlEventRepo) Insert(e *Event) error {
	return r.db.QueryRow(
		`INSERT INTO events(title, date, time, location, attendees, description, category, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		e.Title, e.Date, e.Time, e.Location, string(e.Attendees),
		e.Description, e.Category, e.Status).
		Scan(&e.ID)
}

func (r *sqlEventRepo) AllByTitleDesc() ([]Event, error) {
	rows, err := r.db.Query(
		`SELECT ` + eventColumns + ` FROM events ORDER BY title DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateByID 以 body 的 id 為準整筆覆蓋；沒中任何 row 回 (0, nil)，由呼叫端決定要不要在意
func (r *sqlEventRepo) UpdateByID(e *Event) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE events SET title=$1, date=$2, time=$3, location=$4, attendees=$5,
		 description=$6, category=$7, status=$8 WHERE id=$9`,
		e.Title, e.Date, e.Time, e.Location, string(e.Attendees),
		e.Description, e.Category, e.Status, e.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *sqlEventRepo) DeleteByID(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
