// Package thumbnail produces bounded-size preview images encoded for
// embedding directly into the rendered artifact.
package thumbnail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"sync"

	// Register decoders for the formats the extractor accepts
	_ "image/gif"
	_ "image/png"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"

	"github.com/jengzang/photomap-go/internal/models"
	"github.com/jengzang/photomap-go/internal/store"
)

const jpegQuality = 80

// Prepare downsamples the record's source image, preserving aspect ratio
// with the longest side equal to maxDimension, and encodes it as a base64
// JPEG data URI so the rendered document stays self-contained. It fails
// with a ThumbnailError when the source is unreadable or unsupported.
func Prepare(rec models.PointRecord, maxDimension int) (string, error) {
	fh, err := os.Open(rec.ThumbnailRef)
	if err != nil {
		return "", &models.ThumbnailError{RecordID: rec.ID, Path: rec.ThumbnailRef, Err: err}
	}
	defer fh.Close()

	img, _, err := image.Decode(fh)
	if err != nil {
		return "", &models.ThumbnailError{RecordID: rec.ID, Path: rec.ThumbnailRef, Err: err}
	}

	thumb := resize.Thumbnail(uint(maxDimension), uint(maxDimension), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", &models.ThumbnailError{RecordID: rec.ID, Path: rec.ThumbnailRef, Err: err}
	}

	return fmt.Sprintf("data:image/jpeg;base64,%s",
		base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

type result struct {
	id  string
	uri string
	err error
}

// PrepareAll prepares thumbnails for every record with a source image,
// running a worker pool bounded by concurrency. Results are re-associated
// with their point id; completion order never influences the output.
// Failures are isolated per point: they are logged, counted in the report
// and the point degrades to a default marker.
func PrepareAll(logger zerolog.Logger, st *store.Store, maxDimension, concurrency int, report *models.RunReport) map[string]string {
	if concurrency < 1 {
		concurrency = 1
	}

	jobs := make(chan models.PointRecord)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				uri, err := Prepare(rec, maxDimension)
				results <- result{id: rec.ID, uri: uri, err: err}
			}
		}()
	}

	go func() {
		for rec := range st.All() {
			if rec.ThumbnailRef == "" {
				continue
			}
			jobs <- rec
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	thumbs := make(map[string]string)
	for res := range results {
		if res.err != nil {
			logger.Warn().Str("point", res.id).Err(res.err).Msg("thumbnail preparation failed")
			report.ThumbnailsFailed++
			report.AddFailure(res.id, models.StageThumbnail, res.err.Error())
			continue
		}
		thumbs[res.id] = res.uri
		report.ThumbnailsEmbedded++
	}

	return thumbs
}
