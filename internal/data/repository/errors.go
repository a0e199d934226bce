package repository

import "errors"

var (
	// ErrNotFound berarti baris yang diminta tidak ada.
	ErrNotFound = errors.New("not found")

	// ErrConflict berarti slot yang diminta terlalu dekat dengan booking lain
	// pada tanggal dan cabang yang sama.
	ErrConflict = errors.New("slot unavailable")
)
