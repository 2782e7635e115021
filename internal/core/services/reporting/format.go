package reporting

import (
	"math"
	"strconv"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes converts a byte count to a human-readable string using
// binary (1024-based) units, rounded to at most two decimal places.
// Zero and negative values map to "0 Bytes".
func FormatBytes(b int64) string {
	if b <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(b)) / math.Log(1024)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}
	v := float64(b) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}
