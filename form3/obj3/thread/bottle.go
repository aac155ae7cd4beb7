package thread

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/threadkit/sdf"
)

// PlasticBottle is an ASTM D2911 plastic bottle thread. Size codes take
// the form [L|M]<diameter>SP<finish>, e.g. "M38SP444". L style threads
// have symmetric 30 degree flanks, M style threads are buttress shaped.
type PlasticBottle struct {
	Size string
	Ext  bool
	Hand Hand
	// Interference of the thread root into its core. Zero means
	// DefaultInterference, NoInterference means none.
	Interference float64
	// Compensation moves the thread radially to allow for manufacturing
	// shrinkage [mm]. External threads move in, internal threads move out.
	Compensation float64
	Simple       bool
}

var bottleSizeRE = regexp.MustCompile(`^([LM])(\d+)SP(\d+)$`)

// {TPI: [root width, thread height]}
var (
	bottleLStyle = map[int][2]float64{
		4:  {3.18, 1.57},
		5:  {3.05, 1.52},
		6:  {2.39, 1.19},
		8:  {2.13, 1.07},
		12: {1.14, 0.76},
	}
	bottleMStyle = map[int][2]float64{
		4:  {3.18, 1.57},
		5:  {3.05, 1.52},
		6:  {2.39, 1.19},
		8:  {2.13, 1.07},
		12: {1.29, 0.76},
	}
)

// bottleFinish lists minimum turns and allowed diameters per finish.
var bottleFinish = map[int]struct {
	turns     float64
	diameters []int
}{
	100: {1.125, []int{22, 24, 28, 30, 33, 35, 38}},
	103: {1.125, []int{26}},
	110: {1.125, []int{28}},
	200: {1.5, []int{24, 28}},
	400: {1.0, []int{18, 20, 22, 24, 28, 30, 33, 35, 38, 40, 43, 45, 48, 51, 53, 58, 60, 63, 66, 70, 75, 77, 83, 89, 100, 110, 120}},
	410: {1.5, []int{18, 20, 22, 24, 28}},
	415: {2.0, []int{13, 15, 18, 20, 22, 24, 28, 30, 33}},
	425: {2.0, []int{13, 15}},
	444: {1.125, []int{24, 28, 30, 33, 35, 38, 40, 43, 45, 48, 51, 53, 58, 60, 63, 66, 70, 75, 77, 83}},
}

// bottleDims maps nominal diameter to {max diameter, min diameter, TPI}.
var bottleDims = map[int][3]float64{
	13:  {13.06, 12.75, 12},
	15:  {14.76, 14.45, 12},
	18:  {17.88, 17.47, 8},
	20:  {19.89, 19.48, 8},
	22:  {21.89, 21.49, 8},
	24:  {23.88, 23.47, 8},
	26:  {25.63, 25.12, 8},
	28:  {27.64, 27.13, 6},
	30:  {28.62, 28.12, 6},
	33:  {32.13, 31.52, 6},
	35:  {34.64, 34.04, 6},
	38:  {37.49, 36.88, 6},
	40:  {40.13, 39.37, 6},
	43:  {42.01, 41.25, 6},
	45:  {44.20, 43.43, 6},
	48:  {47.50, 46.74, 6},
	51:  {49.99, 49.10, 6},
	53:  {52.50, 51.61, 6},
	58:  {56.49, 55.60, 6},
	60:  {59.49, 58.60, 6},
	63:  {62.51, 61.62, 6},
	66:  {65.51, 64.62, 6},
	70:  {69.49, 68.60, 6},
	75:  {73.99, 73.10, 6},
	77:  {77.09, 76.20, 6},
	83:  {83.01, 82.12, 5},
	89:  {89.18, 88.29, 5},
	100: {100.00, 99.11, 5},
	110: {110.01, 109.12, 5},
	120: {119.99, 119.10, 5},
}

// bottleAngles returns the two flank angles in degrees.
func bottleAngles(style string, finish int) [2]float64 {
	if style == "L" {
		return [2]float64{30, 30}
	}
	switch finish {
	case 100, 103, 200:
		return [2]float64{10, 40}
	case 110:
		return [2]float64{10, 50}
	}
	return [2]float64{10, 45}
}

// PlasticBottleSizes returns every legal size code.
func PlasticBottleSizes() []string {
	var sizes []string
	for _, finish := range bottleFinishes() {
		for _, style := range []string{"L", "M"} {
			for _, d := range bottleFinish[finish].diameters {
				sizes = append(sizes, fmt.Sprintf("%s%dSP%d", style, d, finish))
			}
		}
	}
	return sizes
}

func bottleFinishes() []int {
	f := make([]int, 0, len(bottleFinish))
	for k := range bottleFinish {
		f = append(f, k)
	}
	sort.Ints(f)
	return f
}

// Spec derives the canonical thread spec. Bottle threads always fade
// at both ends and are (minimum turns + 3/4) pitches long.
func (b PlasticBottle) Spec() (Spec, error) {
	m := bottleSizeRE.FindStringSubmatch(b.Size)
	if m == nil {
		return Spec{}, paramErr("size", b.Size, "[L|M][diameter(mm)]SP[100|103|110|200|400|410|415|425|444]")
	}
	style := m[1]
	diameter, _ := strconv.Atoi(m[2])
	finish, _ := strconv.Atoi(m[3])
	fd, ok := bottleFinish[finish]
	if !ok {
		return Spec{}, paramErr("finish", finish, fmt.Sprintf("one of %v", bottleFinishes()))
	}
	if !containsInt(fd.diameters, diameter) {
		return Spec{}, paramErr("diameter", diameter, fmt.Sprintf("one of %v for finish %d", fd.diameters, finish))
	}
	if math.IsNaN(b.Compensation) || math.IsInf(b.Compensation, 0) {
		return Spec{}, paramErr("manufacturing compensation", b.Compensation, "a finite number")
	}
	dims := bottleDims[diameter]
	dmax, dmin, tpi := dims[0], dims[1], int(dims[2])
	rh := bottleMStyle[tpi]
	if style == "L" {
		rh = bottleLStyle[tpi]
	}
	rootWidth, height := rh[0], rh[1]
	angles := bottleAngles(style, finish)
	sh0 := height * math.Tan(sdf.DtoR(angles[0]))
	sh1 := height * math.Tan(sdf.DtoR(angles[1]))
	apexWidth := rootWidth - sh0 - sh1
	offset := sh0 + apexWidth/2 - rootWidth/2

	pitch := sdf.MillimetresPerInch / float64(tpi)
	s := Spec{
		ApexWidth:    apexWidth,
		RootWidth:    rootWidth,
		Pitch:        pitch,
		Length:       (fd.turns + 0.75) * pitch,
		Interference: interferenceOrDefault(b.Interference),
		Hand:         b.Hand,
		Ends:         [2]Finish{Fade, Fade},
		Simple:       b.Simple,
		Family:       FamilyPlasticBottle,
	}
	if b.Ext {
		s.ApexRadius = dmin/2 - b.Compensation
		s.RootRadius = dmin/2 - height - b.Compensation
		s.ApexOffset = offset
	} else {
		s.RootRadius = dmax/2 + b.Compensation
		s.ApexRadius = dmax/2 - height + b.Compensation
		s.ApexOffset = -offset
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
