package language

import "github.com/ZacxDev/shorts-renderer/pkg/types"

// Chinese wraps by glyph count; there are no word-delimiting spaces.
type Chinese struct{}

func init() {
	Register(&Chinese{})
}

func (l *Chinese) Code() string {
	return "zh"
}

func (l *Chinese) WrapMode() types.WrapMode {
	return types.WrapModeGlyph
}

func (l *Chinese) BulletGlyph() string {
	return "·"
}

func (l *Chinese) FontKey() string {
	return "NotoSansSC-Bold.otf"
}

func (l *Chinese) TitleSuffix() string {
	return " #shorts"
}

func (l *Chinese) DefaultDescription() string {
	return "让每一天更好一点的小技巧。"
}

func (l *Chinese) DefaultDescriptionExtra() string {
	return "每天更新。"
}

func (l *Chinese) DefaultTags() []string {
	return []string{"shorts", "生活技巧", "自我提升"}
}

func (l *Chinese) DefaultTagsExtra() []string {
	return []string{"youtubeshorts"}
}
