package store

import (
	"context"
	"database/sql"
	"time"
)

var ErrNotFound = sql.ErrNoRows

// DetectionEvent — строка журнала срабатываний детектора.
type DetectionEvent struct {
	ID             int64
	Timestamp      time.Time
	WeaponDetected bool
	GunDetected    bool
	KnifeDetected  bool
	ExtractedText  string
}

type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// EnsureSchema создаёт таблицу detection_events, если её ещё нет.
// Схема объявлена на вырост: пайплайн анализа в неё пока не пишет.
func (r *EventRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists detection_events (
  id serial primary key,
  timestamp timestamptz not null default now(),
  weapon_detected boolean not null default false,
  gun_detected boolean not null default false,
  knife_detected boolean not null default false,
  extracted_text text not null default ''
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// Insert фиксирует одно срабатывание и возвращает id записи.
func (r *EventRepo) Insert(ctx context.Context, ev DetectionEvent) (int64, error) {
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	const q = `
insert into detection_events (timestamp, weapon_detected, gun_detected, knife_detected, extracted_text)
values ($1,$2,$3,$4,$5)
returning id`
	var id int64
	err := r.DB.QueryRowContext(ctx, q,
		ts, ev.WeaponDetected, ev.GunDetected, ev.KnifeDetected, ev.ExtractedText,
	).Scan(&id)
	return id, err
}

// LastByWeapon достаёт самую свежую запись с оружием (для ручной сверки алертов).
func (r *EventRepo) LastByWeapon(ctx context.Context) (*DetectionEvent, error) {
	const q = `
select id, timestamp, weapon_detected, gun_detected, knife_detected, extracted_text
from detection_events
where weapon_detected
order by timestamp desc
limit 1`
	row := r.DB.QueryRowContext(ctx, q)

	var ev DetectionEvent
	if err := row.Scan(&ev.ID, &ev.Timestamp, &ev.WeaponDetected, &ev.GunDetected,
		&ev.KnifeDetected, &ev.ExtractedText); err != nil {
		return nil, err
	}
	return &ev, nil
}
