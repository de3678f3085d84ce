package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "x"
	}
	return out
}

// EnsureUniqueSlug mencari slug unik pada tabel tertentu.
// base → slug dasar (hasil GenerateSlug).
// table → nama tabel, misal "events".
// column → nama kolom slug, misal "event_slug".
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	var count int64
	if err := db.Table(table).
		Where(fmt.Sprintf("%s = ?", column), base).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}

	// cari suffix terbesar lalu +1
	type row struct{ Slug string }
	var rows []row
	like := base + "%" // slug kita a-z0-9- aman dipakai LIKE
	if err := db.Table(table).
		Select(column+" as slug").
		Where(fmt.Sprintf("%s = ? OR %s LIKE ?", column, column), base, like).
		Find(&rows).Error; err != nil {
		return "", err
	}

	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	for _, r := range rows {
		m := re.FindStringSubmatch(r.Slug)
		if len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}

	return fmt.Sprintf("%s-%d", base, maxN+1), nil
}
