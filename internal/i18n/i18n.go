// Package i18n is the process-wide localization context. The settings
// store switches the language; views look strings up with T.
package i18n

import "sync"

var (
	mu   sync.RWMutex
	lang = "en"
)

var tables = map[string]map[string]string{
	"en": {
		"tab.dashboard":        "Dashboard",
		"tab.history":          "History",
		"tab.analytics":        "Analytics",
		"tab.settings":         "Settings",
		"income":               "Income",
		"expense":              "Expense",
		"balance":              "Balance",
		"recent_transactions":  "Recent Transactions",
		"no_transactions":      "No transactions yet",
		"add_transaction":      "Add Transaction",
		"amount":               "Amount",
		"category":             "Category",
		"date":                 "Date",
		"note":                 "Note",
		"type":                 "Type",
		"spending_by_day":      "Spending by Day",
		"spending_by_category": "Spending by Category",
		"no_expenses":          "No expenses this month",
	},
	"id": {
		"tab.dashboard":        "Dasbor",
		"tab.history":          "Riwayat",
		"tab.analytics":        "Analitik",
		"tab.settings":         "Pengaturan",
		"income":               "Pemasukan",
		"expense":              "Pengeluaran",
		"balance":              "Saldo",
		"recent_transactions":  "Transaksi Terbaru",
		"no_transactions":      "Belum ada transaksi",
		"add_transaction":      "Tambah Transaksi",
		"amount":               "Jumlah",
		"category":             "Kategori",
		"date":                 "Tanggal",
		"note":                 "Catatan",
		"type":                 "Tipe",
		"spending_by_day":      "Pengeluaran per Hari",
		"spending_by_category": "Pengeluaran per Kategori",
		"no_expenses":          "Tidak ada pengeluaran bulan ini",
	},
}

// SetLanguage switches the active language. Unknown codes fall back to
// English.
func SetLanguage(code string) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := tables[code]; !ok {
		code = "en"
	}
	lang = code
}

func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T returns the translation for key in the active language, falling
// back to English and finally to the key itself.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if v, ok := tables[lang][key]; ok {
		return v
	}
	if v, ok := tables["en"][key]; ok {
		return v
	}
	return key
}
