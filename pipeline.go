package rgb332

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	numWorkers = 10

	// TableExt replaces the extension of each image converted by Scan
	TableExt = ".txt"
)

func isPNG(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".png")
}

func tableFile(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + TableExt
}

func (c *Converter) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, errors.New("not a directory")
	}

	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal PNG file
			if !info.Mode().IsRegular() || !isPNG(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Converter) convertFile(file string) error {
	// Only create the table once the whole image has converted
	b := new(bytes.Buffer)
	if err := c.Convert(file, b); err != nil {
		return err
	}

	out := tableFile(file)
	if err := ioutil.WriteFile(out, b.Bytes(), 0644); err != nil {
		os.Remove(out)
		return err
	}

	return nil
}

func (c *Converter) imageWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for {
			if ctx.Err() != nil {
				return
			}

			var file string
			select {
			case f, ok := <-in:
				if !ok {
					return
				}
				file = f
			case <-ctx.Done():
				return
			}

			if err := c.convertFile(file); err != nil {
				errc <- err
				return
			}
			c.logger.Printf("Converted \"%s\"\n", file)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the directory tree rooted at path and converts every PNG image
// found, writing each table next to its image with the extension replaced
// by TableExt.
func (c *Converter) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findImages(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := c.imageWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
