package language

import "github.com/ZacxDev/shorts-renderer/pkg/types"

// Japanese text carries no inter-word spaces, so it wraps by glyph count.
type Japanese struct{}

func init() {
	Register(&Japanese{})
}

func (l *Japanese) Code() string {
	return "ja"
}

func (l *Japanese) WrapMode() types.WrapMode {
	return types.WrapModeGlyph
}

func (l *Japanese) BulletGlyph() string {
	return "・" // katakana middle dot
}

func (l *Japanese) FontKey() string {
	return "NotoSansJP-Bold.otf"
}

func (l *Japanese) TitleSuffix() string {
	return " #shorts"
}

func (l *Japanese) DefaultDescription() string {
	return "毎日をちょっと良くするヒント。"
}

func (l *Japanese) DefaultDescriptionExtra() string {
	return "毎日更新中。"
}

func (l *Japanese) DefaultTags() []string {
	return []string{"shorts", "ライフハック", "豆知識"}
}

func (l *Japanese) DefaultTagsExtra() []string {
	return []string{"youtubeshorts"}
}
