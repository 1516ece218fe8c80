package rgb332

import (
	"database/sql"
	"fmt"
	stdimage "image"

	"github.com/bodgit/rgb332/image"
	_ "github.com/mattn/go-sqlite3"
)

// TableDB caches converted tables keyed by the SHA-1 of the source file.
type TableDB struct {
	db *sql.DB
}

func NewTableDB(file string) (*TableDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS rgb332 (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, pixels BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &TableDB{
		db: db,
	}, nil
}

func (db *TableDB) Close() error {
	return db.db.Close()
}

// FindTableBySHA1 returns the table stored for sha, or nil if there isn't one.
func (db *TableDB) FindTableBySHA1(sha string) (*image.RGB332, error) {
	var width, height int
	var pixels []byte
	switch err := db.db.QueryRow("SELECT width, height, pixels FROM rgb332 WHERE sha1 = ?", sha).Scan(&width, &height, &pixels); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		if width < 0 || height < 0 || len(pixels) != width*height {
			return nil, fmt.Errorf("cached table %s is %d bytes, %dx%d needs %d", sha, len(pixels), width, height, width*height)
		}
		m := image.NewRGB332(stdimage.Rect(0, 0, width, height))
		copy(m.Pix, pixels)
		return m, nil
	default:
		return nil, err
	}
}

// AddTable stores m for sha. An existing entry for sha is left untouched.
func (db *TableDB) AddTable(sha string, m *image.RGB332) error {
	b := m.Bounds()

	// Pack the rows in case m is a sub-image with a wider stride
	pixels := make([]byte, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		pixels = append(pixels, m.Pix[i:i+b.Dx()]...)
	}

	if _, err := db.db.Exec("INSERT OR IGNORE INTO rgb332 (sha1, width, height, pixels) VALUES (?, ?, ?, ?)", sha, b.Dx(), b.Dy(), pixels); err != nil {
		return err
	}
	return nil
}
