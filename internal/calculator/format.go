package calculator

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// FormatDate форматирует дату как dd/MM/yyyy HH:mm в указанной локации
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(domain.DisplayDateFormat)
}

// FormatPrice форматирует сумму с пробелом между разрядами: "1 500 FCFA", "3.5 FCFA"
// Дробная часть выводится только для нецелых сумм, не больше двух знаков
func FormatPrice(amount float64) string {
	amount = math.Round(amount*100) / 100
	if amount == math.Trunc(amount) {
		return humanize.FormatFloat("# ###.", amount) + " " + domain.CurrencyLabel
	}

	formatted := strings.TrimRight(humanize.FormatFloat("# ###.##", amount), "0")
	return formatted + " " + domain.CurrencyLabel
}
