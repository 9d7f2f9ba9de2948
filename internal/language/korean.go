package language

import "github.com/ZacxDev/shorts-renderer/pkg/types"

// Korean uses inter-word spaces, so word wrapping applies despite the
// CJK-adjacent script.
type Korean struct{}

func init() {
	Register(&Korean{})
}

func (l *Korean) Code() string {
	return "ko"
}

func (l *Korean) WrapMode() types.WrapMode {
	return types.WrapModeWord
}

func (l *Korean) BulletGlyph() string {
	return "•"
}

func (l *Korean) FontKey() string {
	return "NotoSansKR-Bold.otf"
}

func (l *Korean) TitleSuffix() string {
	return " #shorts"
}

func (l *Korean) DefaultDescription() string {
	return "하루를 조금 더 좋게 만드는 팁."
}

func (l *Korean) DefaultDescriptionExtra() string {
	return "매일 새 영상이 올라옵니다."
}

func (l *Korean) DefaultTags() []string {
	return []string{"shorts", "꿀팁", "자기계발"}
}

func (l *Korean) DefaultTagsExtra() []string {
	return []string{"youtubeshorts"}
}
