package core

// InteractionType 是封闭的交互类型集合，每种类型携带固定权重，
// 用于缩放画像向量的 nudge 幅度。权重由上游业务定义，这里只是常量。
type InteractionType string

const (
	InteractionLike    InteractionType = "LIKE"
	InteractionDislike InteractionType = "DISLIKE"
	InteractionWatch   InteractionType = "WATCH"
)

var interactionWeights = map[InteractionType]float64{
	InteractionLike:    2,
	InteractionDislike: -2,
	InteractionWatch:   0.75,
}

// Weight 返回交互类型的固定权重，未知类型返回 0（不产生 nudge）。
func (t InteractionType) Weight() float64 {
	return interactionWeights[t]
}

// Valid 判断交互类型是否在封闭集合内。
func (t InteractionType) Valid() bool {
	_, ok := interactionWeights[t]
	return ok
}

// RatingCategory 是星级评分（1-5）派生出的三档分类。
// 纯函数派生，不落库。
type RatingCategory int

const (
	RatingDetractor RatingCategory = iota
	RatingNeutral
	RatingPromoter
)

var ratingCategoryWeights = [...]int{
	RatingDetractor: -5,
	RatingNeutral:   1,
	RatingPromoter:  5,
}

var ratingCategoryNames = [...]string{
	RatingDetractor: "DETRACTOR",
	RatingNeutral:   "NEUTRAL",
	RatingPromoter:  "PROMOTER",
}

// RatingCategoryFromStars 按阈值分档：<=2 星为 DETRACTOR，3 星为 NEUTRAL，>=4 星为 PROMOTER。
func RatingCategoryFromStars(stars int) RatingCategory {
	switch {
	case stars <= 2:
		return RatingDetractor
	case stars == 3:
		return RatingNeutral
	default:
		return RatingPromoter
	}
}

// Weight 返回档位的固定整数权重。
func (c RatingCategory) Weight() int {
	return ratingCategoryWeights[c]
}

func (c RatingCategory) String() string {
	return ratingCategoryNames[c]
}
