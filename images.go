package tourweb

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/eringen/tourweb/content"
	"github.com/eringen/tourweb/views"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 82
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
	adminImageURL = "/admin/images/"
)

// processImage decodes an image from src, resizes it down to maxImageWidth
// when wider, and encodes it as JPEG.
func processImage(src io.Reader, originalName string) (views.Image, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return views.Image{}, nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxImageWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return views.Image{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return views.Image{
		Filename: slugifyFilename(originalName) + ".jpg",
		Width:    w,
		Height:   h,
		Size:     int64(buf.Len()),
	}, buf.Bytes(), nil
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if s := content.Slugify(base); s != "" {
		return s
	}
	return "image"
}

func (a *App) uploadsDir() string {
	return filepath.Join(a.Config.StaticDir, uploadsSubdir)
}

// uniqueFilename appends a counter until filename is free in the uploads dir.
func (a *App) uniqueFilename(filename string) string {
	base := strings.TrimSuffix(filename, ".jpg")
	candidate := filename
	for counter := 2; ; counter++ {
		if _, err := os.Stat(filepath.Join(a.uploadsDir(), candidate)); errors.Is(err, os.ErrNotExist) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
	}
}

// validUploadName rejects anything that could escape the uploads dir.
func validUploadName(name string) bool {
	return name != "" && name == filepath.Base(name) && !strings.HasPrefix(name, ".")
}

func (a *App) handleImageUpload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := processImage(src, file.Filename)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	dir := a.uploadsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	img.Filename = a.uniqueFilename(img.Filename)
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	return redirectWithFlash(c, adminImageURL, "Uploaded "+img.Filename+".")
}

func (a *App) handleImageDelete(c echo.Context) error {
	filename := c.Param("filename")
	if !validUploadName(filename) {
		return c.String(http.StatusBadRequest, "Invalid filename")
	}

	err := os.Remove(filepath.Join(a.uploadsDir(), filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete image: %w", err)
	}
	return redirectWithFlash(c, adminImageURL, "Deleted "+filename+".")
}

func (a *App) handleImageList(c echo.Context) error {
	images, err := a.listImages()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminImages(views.ImagesPage{
		Site:      a.site(),
		Meta:      a.meta("Images", "", "admin", "images"),
		CSRFToken: CsrfToken(c),
		Flashes:   Flashes(c),
		Images:    images,
	}))
}

// listImages reads the uploads dir, newest first. The directory is the
// image index; files that do not decode as images are skipped.
func (a *App) listImages() ([]views.Image, error) {
	entries, err := os.ReadDir(a.uploadsDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	type listed struct {
		img     views.Image
		modTime time.Time
	}
	var found []listed
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		cfg, ok := decodeImageConfig(filepath.Join(a.uploadsDir(), e.Name()))
		if !ok {
			continue
		}
		found = append(found, listed{
			img: views.Image{
				Filename:   e.Name(),
				URL:        "/public/" + uploadsSubdir + "/" + e.Name(),
				Width:      cfg.Width,
				Height:     cfg.Height,
				Size:       info.Size(),
				UploadedAt: info.ModTime().UTC().Format(time.RFC3339),
			},
			modTime: info.ModTime(),
		})
	}
	slices.SortFunc(found, func(x, y listed) int {
		if c := y.modTime.Compare(x.modTime); c != 0 {
			return c
		}
		return cmp.Compare(x.img.Filename, y.img.Filename)
	})

	images := make([]views.Image, 0, len(found))
	for _, f := range found {
		images = append(images, f.img)
	}
	return images, nil
}

func decodeImageConfig(path string) (image.Config, bool) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, false
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	return cfg, err == nil
}
