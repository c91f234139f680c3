package level

// Defaults returns the built-in campaign: home row first, then the top row,
// symbols and finally the whole keyboard. Thresholds are cumulative scores.
func Defaults() []Level {
	return []Level{
		{Number: 1, Letters: []rune("ASDFG"), Speed: 10, Threshold: 10},
		{Number: 2, Letters: []rune("HJKL"), Speed: 15, Threshold: 15},
		{Number: 3, Letters: []rune("ASDFGHJKL"), Speed: 25, Threshold: 25},
		{Number: 4, Letters: []rune("QWERTASDFG"), Speed: 35, Threshold: 35},
		{Number: 5, Letters: []rune("YUIOPHJKL"), Speed: 50, Threshold: 50},
		{Number: 6, Letters: []rune("QWERTASDFGYUIOPHJKL"), Speed: 70, Threshold: 70},
		{Number: 7, Letters: []rune("[]{}$#'!?;:=*%1234567890"), Speed: 70, Threshold: 90},
		{Number: 8, Letters: []rune("ZXCVBNMQWERTASDFGYUIOPHJKL"), Speed: 75, Threshold: 110},
	}
}
