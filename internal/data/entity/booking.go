package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking adalah satu janji konsultasi nasabah di cabang.
// Date dan Time disimpan sebagai teks ("2006-01-02" dan "15:04") mengikuti
// format yang dikirim form booking.
type Booking struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Age       int       `db:"age"`
	Date      string    `db:"date"`
	Time      string    `db:"time"`
	Location  string    `db:"location"`
	CreatedAt time.Time `db:"created_at"`
}
