package menu

type Category string

const (
	CategoryWestern  Category = "western"
	CategoryJapanese Category = "japanese"
	CategoryChinese  Category = "chinese"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWestern, CategoryJapanese, CategoryChinese:
		return true
	}
	return false
}
