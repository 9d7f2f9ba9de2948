package language

import "github.com/ZacxDev/shorts-renderer/pkg/types"

type Spanish struct{}

func init() {
	Register(&Spanish{})
}

func (l *Spanish) Code() string {
	return "es"
}

func (l *Spanish) WrapMode() types.WrapMode {
	return types.WrapModeWord
}

func (l *Spanish) BulletGlyph() string {
	return "•"
}

func (l *Spanish) FontKey() string {
	return "NotoSans-Bold.ttf"
}

func (l *Spanish) TitleSuffix() string {
	return " #shorts"
}

func (l *Spanish) DefaultDescription() string {
	return "Consejos rapidos para mejorar tu dia."
}

func (l *Spanish) DefaultDescriptionExtra() string {
	return "Videos nuevos cada dia."
}

func (l *Spanish) DefaultTags() []string {
	return []string{"shorts", "consejos", "bienestar"}
}

func (l *Spanish) DefaultTagsExtra() []string {
	return []string{"youtubeshorts"}
}
