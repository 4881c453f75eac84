package service

import "fmt"

// tinybarPerHbar is the fixed power-of-ten scaling between the ledger's
// smallest unit and one whole HBAR.
const tinybarPerHbar = 100_000_000

// FormatTinybar renders a tinybar amount as a human-readable HBAR string
// with exactly 8 fractional digits: 123456789 -> "1.23456789".
func FormatTinybar(tinybar int64) string {
	sign := ""
	if tinybar < 0 {
		sign = "-"
		tinybar = -tinybar
	}
	return fmt.Sprintf("%s%d.%08d", sign, tinybar/tinybarPerHbar, tinybar%tinybarPerHbar)
}
