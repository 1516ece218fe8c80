/*
Package rgb332 converts PNG images into RGB332 firmware tables.

Each pixel is reduced to a single RRRGGGBB byte and printed as a hex literal
on its own line, ready to be pasted into a source table for a low-color
display.
*/
package rgb332

import "log"

// DefaultFile is the image converted when no file is given.
const DefaultFile = "LoungingJubs.png"

type Converter struct {
	db     *TableDB
	logger *log.Logger
}

func New(db *TableDB, logger *log.Logger) *Converter {
	return &Converter{
		db:     db,
		logger: logger,
	}
}

func (c *Converter) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
