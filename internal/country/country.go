// Package country maps ISO 3166-1 alpha-3 codes to localized country names.
package country

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Resolver translates an alpha-3 code into a localized display name.
// Implementations return ok=false for unknown codes.
type Resolver interface {
	NameCN(code string) (string, bool)
}

// CSVResolver reads the country table from a CSV export of the ISO dataset.
// Lookups are case-insensitive on the code column.
type CSVResolver struct {
	once sync.Once
	path string
	err  error

	mu    sync.RWMutex
	names map[string]string
}

// Column headers expected in the dataset.
const (
	colAlpha3 = "ISO3166-1-Alpha-3"
	colNameCN = "official_name_cn"
)

// NewCSVResolver returns a resolver backed by the CSV at path. The file is
// read lazily on first lookup so startup does not depend on it.
func NewCSVResolver(path string) *CSVResolver {
	return &CSVResolver{path: path}
}

func (r *CSVResolver) load() {
	f, err := os.Open(r.path)
	if err != nil {
		r.err = fmt.Errorf("open country table: %w", err)
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		r.err = fmt.Errorf("read country table header: %w", err)
		return
	}
	codeIdx, nameIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case colAlpha3:
			codeIdx = i
		case colNameCN:
			nameIdx = i
		}
	}
	if codeIdx < 0 || nameIdx < 0 {
		r.err = fmt.Errorf("country table missing %q or %q column", colAlpha3, colNameCN)
		return
	}

	names := make(map[string]string)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if codeIdx >= len(row) || nameIdx >= len(row) {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(row[codeIdx]))
		name := strings.TrimSpace(row[nameIdx])
		if code == "" || name == "" {
			continue
		}
		names[code] = name
	}
	r.mu.Lock()
	r.names = names
	r.mu.Unlock()
}

// NameCN implements Resolver.
func (r *CSVResolver) NameCN(code string) (string, bool) {
	r.once.Do(r.load)
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// Err reports the load failure, if any. Lookups after a failed load
// simply miss.
func (r *CSVResolver) Err() error {
	r.once.Do(r.load)
	return r.err
}

// StaticResolver serves lookups from an in-memory map. Used in tests and
// as a fallback when no CSV is configured.
type StaticResolver map[string]string

// NameCN implements Resolver.
func (r StaticResolver) NameCN(code string) (string, bool) {
	name, ok := r[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// DefaultResolver covers the codes most commonly seen on scanned documents.
func DefaultResolver() StaticResolver {
	return StaticResolver{
		"CHN": "中国",
		"HKG": "香港",
		"MAC": "澳门",
		"TWN": "台湾",
		"JPN": "日本",
		"KOR": "韩国",
		"SGP": "新加坡",
		"MYS": "马来西亚",
		"THA": "泰国",
		"VNM": "越南",
		"PHL": "菲律宾",
		"IDN": "印度尼西亚",
		"IND": "印度",
		"RUS": "俄罗斯",
		"MNG": "蒙古",
		"KAZ": "哈萨克斯坦",
		"PAK": "巴基斯坦",
		"NPL": "尼泊尔",
		"MMR": "缅甸",
		"KHM": "柬埔寨",
		"LAO": "老挝",
		"BRN": "文莱",
		"ARE": "阿联酋",
		"SAU": "沙特阿拉伯",
		"TUR": "土耳其",
		"EGY": "埃及",
		"ZAF": "南非",
		"BRA": "巴西",
		"ARG": "阿根廷",
		"MEX": "墨西哥",
		"NZL": "新西兰",
	}
}

// Chain tries each resolver in order.
type Chain []Resolver

// NameCN implements Resolver.
func (c Chain) NameCN(code string) (string, bool) {
	for _, r := range c {
		if name, ok := r.NameCN(code); ok {
			return name, ok
		}
	}
	return "", false
}
