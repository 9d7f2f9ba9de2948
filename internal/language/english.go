package language

import "github.com/ZacxDev/shorts-renderer/pkg/types"

type English struct{}

func init() {
	Register(&English{})
}

func (l *English) Code() string {
	return "en"
}

func (l *English) WrapMode() types.WrapMode {
	return types.WrapModeWord
}

func (l *English) BulletGlyph() string {
	return "•"
}

func (l *English) FontKey() string {
	return "NotoSans-Bold.ttf"
}

func (l *English) TitleSuffix() string {
	return " #shorts"
}

func (l *English) DefaultDescription() string {
	return "Quick tips to make your day a little better."
}

func (l *English) DefaultDescriptionExtra() string {
	return "New videos every day."
}

func (l *English) DefaultTags() []string {
	return []string{"shorts", "tips", "selfimprovement"}
}

func (l *English) DefaultTagsExtra() []string {
	return []string{"youtubeshorts"}
}
