package useswap

var (
	tagRouter    = byte(0x01)
	tagSwapCount = byte(0x02)
	tagEntered   = byte(0x03)
)
