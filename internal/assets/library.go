package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrNotFound    = errors.New("asset not found")
	ErrInvalidName = errors.New("invalid asset name")
)

// ASCIIExtensions - форматы текст-арта для списка ascii.
var ASCIIExtensions = []string{".ans", ".asc", ".diz", ".nfo", ".txt"}

// ============================================================
// Asset Library
// ============================================================

// Library читает шрифты и ascii-арт из двух каталогов.
type Library struct {
	fontsDir string
	asciiDir string
}

func NewLibrary(fontsDir, asciiDir string) *Library {
	return &Library{fontsDir: fontsDir, asciiDir: asciiDir}
}

type FontFile struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	FullPath string `json:"fullPath"`
}

type ASCIIFile struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	FullPath string `json:"fullPath"`
	Size     int64  `json:"size"`
}

type ASCIIContent struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Size     int    `json:"size"`
	Encoding string `json:"encoding"`
}

// Fonts ищет .ttf в каталоге шрифтов. Path - публичный URL под /fonts;
// отсутствующий каталог дает пустой список.
func (l *Library) Fonts() ([]FontFile, error) {
	out := []FontFile{}
	err := filepath.WalkDir(l.fontsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == l.fontsDir {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".ttf") {
			return nil
		}
		rel, err := filepath.Rel(l.fontsDir, p)
		if err != nil {
			return err
		}
		out = append(out, FontFile{
			Name:     strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Path:     path.Join("/fonts", filepath.ToSlash(rel)),
			FullPath: absolute(p),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan fonts: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// ASCII - ascii-файлы, отсортированные по имени.
func (l *Library) ASCII() ([]ASCIIFile, error) {
	entries, err := os.ReadDir(l.asciiDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ASCIIFile{}, nil
		}
		return nil, fmt.Errorf("scan ascii: %w", err)
	}

	out := []ASCIIFile{}
	for _, e := range entries {
		if e.IsDir() || !isASCIIExt(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		full := filepath.Join(l.asciiDir, e.Name())
		out = append(out, ASCIIFile{
			Name:     e.Name(),
			Path:     path.Join("/ascii", e.Name()),
			FullPath: absolute(full),
			Size:     info.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ReadASCII читает ascii-файл и декодирует его наиболее подходящей
// старой кодировкой.
func (l *Library) ReadASCII(filename string) (ASCIIContent, error) {
	if !validName(filename) {
		return ASCIIContent{}, ErrInvalidName
	}
	if !isASCIIExt(filename) {
		return ASCIIContent{}, fmt.Errorf("%w: unsupported extension", ErrInvalidName)
	}

	data, err := os.ReadFile(filepath.Join(l.asciiDir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ASCIIContent{}, ErrNotFound
		}
		return ASCIIContent{}, fmt.Errorf("read %s: %w", filename, err)
	}

	text, enc := Decode(data)
	return ASCIIContent{
		Filename: filename,
		Path:     path.Join("/ascii", filename),
		Content:  text,
		Size:     len(data),
		Encoding: enc,
	}, nil
}

// validName отвергает все, что не является простым именем файла.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(name) == name
}

func isASCIIExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ASCIIExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func absolute(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
