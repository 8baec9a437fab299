package services

import (
	"sort"
	"strings"

	"assetflow/dto"
	"assetflow/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// fuzzyThreshold là độ tương đồng tối thiểu để coi một cụm từ là khớp gần đúng
const fuzzyThreshold = 0.75

// Hàm chuẩn hóa chuỗi: bỏ dấu, chữ thường, gộp khoảng trắng
func normalizeInput(input string) string {
	input = strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
	return strings.Join(strings.Fields(input), " ")
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// digitsOf giữ lại các chữ số, dùng để so khớp chính xác số thứ tự như "#2"
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// matchesQuery khớp không phân biệt dấu; nếu không chứa chuỗi con thì so gần đúng
// từng cụm từ liên tiếp có cùng số từ với query. Chữ số phải trùng khít, sai chính tả chỉ
// được bỏ qua ở phần chữ.
func matchesQuery(name, query string) bool {
	q := normalizeInput(query)
	if q == "" {
		return true
	}
	n := normalizeInput(name)
	if strings.Contains(n, q) {
		return true
	}

	qDigits := digitsOf(q)
	qWords := strings.Fields(q)
	nWords := strings.Fields(n)
	for i := 0; i+len(qWords) <= len(nWords); i++ {
		window := strings.Join(nWords[i:i+len(qWords)], " ")
		if digitsOf(window) != qDigits {
			continue
		}
		if calculateSimilarity(window, q) >= fuzzyThreshold {
			return true
		}
	}
	return false
}

// filterAssets áp dụng bộ lọc trên danh sách đã tải
func filterAssets(assets []models.Asset, filter dto.AssetFilter) []models.Asset {
	filtered := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.RoomID != "" && a.RoomID != filter.RoomID {
			continue
		}
		if filter.AssetTypeID != "" && a.AssetTypeID != filter.AssetTypeID {
			continue
		}
		if filter.Q != "" && !matchesQuery(a.Name, filter.Q) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// sortByName sắp xếp theo tên với quy tắc so sánh tiếng Việt.
// collate.Collator không an toàn khi dùng đồng thời nên mỗi lần gọi tạo mới.
func sortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.Vietnamese)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
