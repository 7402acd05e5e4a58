package core

// Genre 是封闭的题材（标签）枚举，每个题材拥有稳定的从 0 开始的索引。
// 特征向量逐槽位对应一个 Genre：同一个题材在系统生命周期内永远映射到同一个索引，
// 调整索引意味着全量特征向量迁移，属于破坏性变更。
type Genre int

const (
	GenreFantasy Genre = iota
	GenreSciFi
	GenreHorror
	GenreThrillerMystery
	GenreRomance
	GenreClassics
	GenreContemporary
	GenreHistoricalFiction
	GenreYoungAdult
	GenreGraphicNovels
	GenreBiographyMemoir
	GenreSelfHelp
	GenrePhilosophyReligion
	GenreHistoryPolitics
	GenreScienceTechnology

	// GenreCount 是题材总数，同时也是特征向量与用户画像向量的统一维度。
	// 物品向量与画像向量必须同维，否则无法计算距离。
	GenreCount = int(iota)
)

var genreNames = [GenreCount]string{
	"FANTASY",
	"SCI_FI",
	"HORROR",
	"THRILLER_MYSTERY",
	"ROMANCE",
	"CLASSICS",
	"CONTEMPORARY",
	"HISTORICAL_FICTION",
	"YOUNG_ADULT",
	"GRAPHIC_NOVELS",
	"BIOGRAPHY_MEMOIR",
	"SELF_HELP",
	"PHILOSOPHY_RELIGION",
	"HISTORY_POLITICS",
	"SCIENCE_TECHNOLOGY",
}

// Valid 判断题材索引是否落在 [0, GenreCount) 内。
// 上游事件可能携带过期/未知的题材索引，编码前必须检查。
func (g Genre) Valid() bool {
	return g >= 0 && int(g) < GenreCount
}

func (g Genre) String() string {
	if !g.Valid() {
		return "UNKNOWN"
	}
	return genreNames[g]
}

// ParseGenre 按名称解析题材，未知名称返回 (0, false)。
func ParseGenre(name string) (Genre, bool) {
	for i, n := range genreNames {
		if n == name {
			return Genre(i), true
		}
	}
	return 0, false
}
