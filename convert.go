package rgb332

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/bodgit/rgb332/image"
)

func (c *Converter) table(file string) (*image.RGB332, error) {
	if c.db == nil {
		b, err := image.Open(file)
		if err != nil {
			return nil, err
		}
		return image.Convert(b)
	}

	// Hash and decode the same bytes so the key always matches the table
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	sha := sha1Sum(data)

	m, err := c.db.FindTableBySHA1(sha)
	if err != nil {
		return nil, err
	}
	if m != nil {
		c.logger.Printf("Using cached table for \"%s\", with SHA1 \"%s\"\n", file, sha)
		return m, nil
	}

	b, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if m, err = image.Convert(b); err != nil {
		return nil, err
	}

	if err := c.db.AddTable(sha, m); err != nil {
		return nil, err
	}
	c.logger.Printf("Cached table for \"%s\", with SHA1 \"%s\"\n", file, sha)

	return m, nil
}

// Convert decodes the PNG image in file and writes its RGB332 table to w.
func (c *Converter) Convert(file string, w io.Writer) error {
	m, err := c.table(file)
	if err != nil {
		return err
	}
	return image.Encode(w, m)
}
