// Package images maintains the catalog image tree: files are laid out as
// images/{category}/{subcategory}/{file}, oversized originals are scaled
// down, and a webp thumbnail is written next to each original.
package images

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"bazar.GO/catalog"
)

const (
	// MaxWidth caps original images; anything wider gets resized in place.
	MaxWidth = 1600
	// ThumbWidth is the width of the generated webp thumbnails.
	ThumbWidth = 320
	// thumbQuality for webp encoding.
	thumbQuality = 80
)

type Service struct {
	StaticDir string
	DryRun    bool
}

// Result summarizes a maintenance pass.
type Result struct {
	Moved    int
	Resized  int
	Thumbs   int
	Missing  []string
	Warnings []string
}

func (s *Service) imagesDir() string {
	return filepath.Join(s.StaticDir, "images")
}

// Reorganize walks the catalog tree, moves loose root-level image files
// into the per-subcategory layout and rewrites each item's image path.
// The document is mutated in place; the caller persists it.
func (s *Service) Reorganize(doc *catalog.Document) (*Result, error) {
	res := &Result{}
	for ci := range doc.Categories {
		cat := &doc.Categories[ci]
		for si := range cat.Subcategories {
			sub := &cat.Subcategories[si]
			targetDir := filepath.Join(s.imagesDir(), cat.ID, sub.ID)
			if !s.DryRun {
				if err := os.MkdirAll(targetDir, 0o755); err != nil {
					return nil, fmt.Errorf("images: mkdir %s: %w", targetDir, err)
				}
			}
			for ii := range sub.Items {
				item := &sub.Items[ii]
				if item.Image == "" {
					continue
				}
				filename := filepath.Base(item.Image)
				source := filepath.Join(s.imagesDir(), filename)
				target := filepath.Join(targetDir, filename)

				switch {
				case fileExists(source):
					if !s.DryRun {
						if err := os.Rename(source, target); err != nil {
							res.Warnings = append(res.Warnings, fmt.Sprintf("move %s: %v", filename, err))
							continue
						}
					}
					res.Moved++
				case fileExists(target):
					// already in place
				default:
					res.Missing = append(res.Missing, filename)
				}

				item.Image = strings.Join([]string{"images", cat.ID, sub.ID, filename}, "/")
			}
		}
	}
	return res, nil
}

// Process resizes oversized originals in place and writes webp thumbnails
// for every image file under the images directory.
func (s *Service) Process(res *Result) error {
	return filepath.Walk(s.imagesDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg", ".png":
		default:
			return nil
		}

		img, err := imaging.Open(path)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("open %s: %v", path, err))
			return nil
		}

		if img.Bounds().Dx() > MaxWidth {
			img = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
			if !s.DryRun {
				if err := imaging.Save(img, path); err != nil {
					res.Warnings = append(res.Warnings, fmt.Sprintf("resize %s: %v", path, err))
					return nil
				}
			}
			res.Resized++
		}

		thumbPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
		if fileExists(thumbPath) {
			return nil
		}
		if !s.DryRun {
			thumb := imaging.Resize(img, ThumbWidth, 0, imaging.Lanczos)
			f, err := os.Create(thumbPath)
			if err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("thumb %s: %v", thumbPath, err))
				return nil
			}
			defer f.Close()
			if err := webp.Encode(f, thumb, &webp.Options{Quality: thumbQuality}); err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("encode %s: %v", thumbPath, err))
				return nil
			}
		}
		res.Thumbs++
		return nil
	})
}

// Run performs a full pass: reorganize, then resize/thumbnail.
func (s *Service) Run(doc *catalog.Document) (*Result, error) {
	res, err := s.Reorganize(doc)
	if err != nil {
		return nil, err
	}
	if err := s.Process(res); err != nil {
		return res, err
	}
	for _, w := range res.Warnings {
		log.Println("images:", w)
	}
	return res, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
