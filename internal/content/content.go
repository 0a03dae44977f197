// Package content holds the learner-facing text for each phase, in Chinese
// and English, and the asset paths of the phase illustrations.
package content

import (
	"fmt"
	"path"
	"strings"

	"github.com/san-kum/mitosim/internal/mitosis"
)

type Lang string

const (
	Zh Lang = "zh"
	En Lang = "en"
)

func ParseLang(s string) (Lang, error) {
	switch l := Lang(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return Zh, nil
	case Zh, En:
		return l, nil
	}
	return "", fmt.Errorf("unknown language %q: %w", s, mitosis.ErrInvalidInput)
}

// PerCell is the suffix for telophase transition counts.
func (l Lang) PerCell() string {
	if l == En {
		return "/cell"
	}
	return mitosis.PerCellZh
}

// Description is the text shown beside the illustration.
type Description struct {
	Title      string
	Analogy    string
	Features   []string
	Definition string
	Mnemonic   string
	CellLabel  string
}

type phaseText struct {
	name       string
	analogy    string
	features   []string
	definition string
}

var phaseFile = map[mitosis.Phase]string{
	mitosis.Prophase:  "前期",
	mitosis.Metaphase: "中期",
	mitosis.Anaphase:  "后期",
	mitosis.Telophase: "末期",
}

var englishName = map[mitosis.Phase]string{
	mitosis.Prophase:  "Prophase",
	mitosis.Metaphase: "Metaphase",
	mitosis.Anaphase:  "Anaphase",
	mitosis.Telophase: "Telophase",
}

var mnemonics = map[mitosis.Phase]string{
	mitosis.Prophase:  "膜仁消失，两体出现",
	mitosis.Metaphase: "形定数清，赤道排列",
	mitosis.Anaphase:  "点裂数增，均分两极",
	mitosis.Telophase: "两体消失，膜仁重建",
}

var zhText = map[mitosis.Phase]phaseText{
	mitosis.Prophase: {
		analogy: "就像演员在后台准备上台表演一样，细胞内的\"演员\"（染色体）正在整理装扮，准备登台亮相！",
		features: []string{
			"染色质螺旋化：原本松散的染色质像毛线团一样紧紧缠绕，形成粗短的染色体，就像把长绳子卷成小团方便携带",
			"核膜核仁消失：细胞核的\"围墙\"（核膜）和\"工厂\"（核仁）逐渐拆除，为染色体的移动让路",
			"纺锤体形成：%s开始搭建\"运输轨道\"（纺锤体）",
			"姐妹染色单体：每条染色体都像连体双胞胎，通过着丝粒这个\"纽扣\"连在一起",
		},
		definition: "前期是有丝分裂的第一阶段，染色质高度螺旋化形成染色体，核膜和核仁解体，纺锤体开始组装。此时每条染色体由两条通过着丝粒连接的姐妹染色单体组成。",
	},
	mitosis.Metaphase: {
		analogy: "就像军队检阅时所有士兵整齐排列在广场中央一样，染色体们也在细胞中央排成一条整齐的队伍！",
		features: []string{
			"赤道板排列：所有染色体的着丝粒都精确排列在细胞中央的假想平面上，就像珠子串在一条看不见的线上",
			"形态最清晰：染色体此时最\"上镜\"，形态稳定清晰，是科学家观察和拍照的最佳时机",
			"纺锤丝连接：每个着丝粒就像一个\"挂钩\"，两侧都有来自细胞两极的\"绳子\"（纺锤丝）牵着",
			"计数分析：就像点名一样，此时最容易准确统计染色体数目和分析染色体结构",
		},
		definition: "中期是染色体着丝粒排列在细胞中央赤道板上的阶段。纺锤体完全形成，每个着丝粒的两侧都有纺锤丝附着，为后续的染色体分离做准备。",
	},
	mitosis.Anaphase: {
		analogy: "就像拉链被拉开一样，原本连在一起的姐妹染色单体突然分开，各自奔向细胞的两端，就像两队人马分别回到自己的营地！",
		features: []string{
			"着丝粒分裂：连接姐妹染色单体的\"纽扣\"（着丝粒）一分为二，这是后期最关键的\"开关\"事件",
			"染色单体分离：原本的\"连体双胞胎\"分家了，各自成为独立的染色体，奔向细胞两极",
			"数目暂时加倍：因为分离，染色体数目从2N瞬间变成4N，就像一个班级突然分成两个班",
			"同步移动：所有子染色体都以相同速度移动，确保分配的公平性",
		},
		definition: "后期的标志是着丝粒分裂，姐妹染色单体分离成为独立的子染色体，在纺锤丝牵引下向细胞两极移动。此时细胞内染色体数目暂时加倍。",
	},
	mitosis.Telophase: {
		analogy: "就像演出结束后演员们回到各自的化妆间，脱下演出服装一样，染色体们也回到各自的\"房间\"，恢复日常的松散状态！",
		features: []string{
			"染色体解螺旋：紧密卷曲的染色体开始\"放松\"，重新变成细长的染色质丝，就像把卷起的毛线重新展开",
			"核膜核仁重建：在细胞两极重新搭建\"围墙\"（核膜）和\"工厂\"（核仁），为两个新细胞核做准备",
			"纺锤体消失：完成使命的\"运输轨道\"（纺锤体）开始拆除",
			"胞质分裂开始：%s",
		},
		definition: "末期是染色体解螺旋、核膜和核仁重新形成的阶段。纺锤体解体，胞质开始分裂，最终形成两个遗传物质相同的子细胞。",
	},
}

var enText = map[mitosis.Phase]phaseText{
	mitosis.Prophase: {
		analogy: "Like actors getting ready backstage, the chromosomes condense and prepare to take the stage.",
		features: []string{
			"Chromatin condenses into short, thick chromosomes",
			"The nuclear envelope and nucleolus break down",
			"Spindle formation: %sthe spindle begins to assemble",
			"Each chromosome consists of two sister chromatids joined at the centromere",
		},
		definition: "Prophase is the first stage of mitosis: chromatin condenses into chromosomes, the nuclear envelope and nucleolus disappear and the spindle starts to form. Each chromosome is made of two sister chromatids joined at a centromere.",
	},
	mitosis.Metaphase: {
		analogy: "Like soldiers lined up on a parade ground, the chromosomes line up across the middle of the cell.",
		features: []string{
			"Centromeres align on the metaphase plate",
			"Chromosome shape is clearest, the best moment to observe",
			"Spindle fibres from both poles attach to each centromere",
			"The easiest stage to count chromosomes",
		},
		definition: "Metaphase is the stage in which centromeres line up on the equatorial plate. The spindle is complete and fibres attach to both sides of every centromere, ready for separation.",
	},
	mitosis.Anaphase: {
		analogy: "Like a zip being pulled open, the joined sister chromatids suddenly part and head for opposite ends of the cell, like two teams returning to their own camps.",
		features: []string{
			"Centromeres split: the \"button\" joining the sister chromatids divides in two",
			"Chromatids separate: each becomes an independent chromosome heading for a pole",
			"Number temporarily doubles: the chromosome count jumps from 2N to 4N",
			"Synchronous movement: all daughter chromosomes move at the same speed, so the split is even",
		},
		definition: "Anaphase begins when centromeres split. Sister chromatids separate into independent daughter chromosomes that are pulled to opposite poles, temporarily doubling the chromosome number.",
	},
	mitosis.Telophase: {
		analogy: "Like actors returning to their dressing rooms after the show and changing out of costume, the chromosomes go back to their own \"rooms\" and relax.",
		features: []string{
			"Chromosomes decondense back into long, thin chromatin threads",
			"Nuclear envelopes and nucleoli re-form at each pole",
			"The spindle, its job done, is taken down",
			"Cytokinesis begins: %s",
		},
		definition: "Telophase is the stage in which chromosomes decondense and the nuclear envelope and nucleolus re-form. The spindle breaks down and the cytoplasm divides, giving two genetically identical daughter cells.",
	},
}

// Title returns e.g. "前期 (Prophase)" or "Prophase".
func Title(p mitosis.Phase, lang Lang) (string, error) {
	zh, ok := phaseFile[p]
	if !ok {
		return "", fmt.Errorf("title: phase %q: %w", p, mitosis.ErrInvalidInput)
	}
	if lang == En {
		return englishName[p], nil
	}
	return fmt.Sprintf("%s (%s)", zh, englishName[p]), nil
}

// Mnemonic returns the Chinese memory rhyme for the phase.
func Mnemonic(p mitosis.Phase) string { return mnemonics[p] }

func CellTypeLabel(c mitosis.CellType, lang Lang) string {
	switch {
	case lang == En && c == mitosis.Animal:
		return "animal cell"
	case lang == En:
		return "plant cell"
	case c == mitosis.Animal:
		return "动物细胞"
	}
	return "植物细胞"
}

// CompositionLabel returns e.g. "2n=6 (二倍体，6条染色体)".
func CompositionLabel(c mitosis.Composition, lang Lang) string {
	if lang == En {
		kind := "diploid"
		if c.Ploidy() == 3 {
			kind = "triploid"
		}
		return fmt.Sprintf("%s (%s, %d chromosomes)", c, kind, c.Total())
	}
	kind := "二倍体"
	if c.Ploidy() == 3 {
		kind = "三倍体"
	}
	return fmt.Sprintf("%s (%s，%d条染色体)", c, kind, c.Total())
}

// Describe assembles the description of a phase for a cell type.
func Describe(p mitosis.Phase, c mitosis.CellType, lang Lang) (Description, error) {
	if !c.Valid() {
		return Description{}, fmt.Errorf("describe: cell type %q: %w", c, mitosis.ErrInvalidInput)
	}
	title, err := Title(p, lang)
	if err != nil {
		return Description{}, err
	}
	table := zhText
	if lang == En {
		table = enText
	}
	text := table[p]

	features := make([]string, len(text.features))
	for i, f := range text.features {
		if strings.Contains(f, "%s") {
			f = fmt.Sprintf(f, cellSpecific(p, c, lang))
		}
		features[i] = f
	}

	return Description{
		Title:      title,
		Analogy:    text.analogy,
		Features:   features,
		Definition: text.definition,
		Mnemonic:   Mnemonic(p),
		CellLabel:  CellTypeLabel(c, lang),
	}, nil
}

func cellSpecific(p mitosis.Phase, c mitosis.CellType, lang Lang) string {
	animal := c == mitosis.Animal
	switch p {
	case mitosis.Prophase:
		if !animal {
			return ""
		}
		if lang == En {
			return "the centrosomes move to opposite poles and "
		}
		return "中心体像两个指挥官分别走向细胞两端，"
	case mitosis.Telophase:
		switch {
		case lang == En && animal:
			return "the membrane pinches inward to form a cleavage furrow"
		case lang == En:
			return "a cell plate forms across the middle of the cell"
		case animal:
			return "细胞膜开始向内凹陷形成\"腰带\"（分裂沟）"
		}
		return "在细胞中央开始建造新的\"隔墙\"（细胞板）"
	}
	return ""
}

// ImagePath returns the illustration path, assets/<动物|植物>/<composition>/<phase>.svg.
func ImagePath(c mitosis.CellType, comp mitosis.Composition, p mitosis.Phase) (string, error) {
	if !c.Valid() || !comp.Valid() {
		return "", fmt.Errorf("image path: %s/%s: %w", c, comp, mitosis.ErrInvalidInput)
	}
	file, ok := phaseFile[p]
	if !ok {
		return "", fmt.Errorf("image path: phase %q: %w", p, mitosis.ErrInvalidInput)
	}
	dir := "植物"
	if c == mitosis.Animal {
		dir = "动物"
	}
	return path.Join("assets", dir, string(comp), file+".svg"), nil
}
