package elp

// The principal terms of ELP2000-82B: the main problem truncated to the terms
// of the abridged ELP-2000/82 solution (amplitudes already fitted, so the
// derivatives B are zero), the dominant Earth figure terms, the Venus
// inequality and the secular variation of the solar eccentricity on the terms
// in l'. The complete theory is read from the data files by LoadTheory, or
// compiled in from the file written by cmd/elpgen.

var mainLongitude = []MainTerm{
	{ILU: [4]int{0, 0, 1, 0}, A: 22639.5864},
	{ILU: [4]int{2, 0, -1, 0}, A: 4586.4972},
	{ILU: [4]int{2, 0, 0, 0}, A: 2369.9304},
	{ILU: [4]int{0, 0, 2, 0}, A: 769.0248},
	{ILU: [4]int{0, 1, 0, 0}, A: -666.4176},
	{ILU: [4]int{0, 0, 0, 2}, A: -411.5952},
	{ILU: [4]int{2, 0, -2, 0}, A: 211.6548},
	{ILU: [4]int{2, -1, -1, 0}, A: 205.4376},
	{ILU: [4]int{2, 0, 1, 0}, A: 191.9592},
	{ILU: [4]int{2, -1, 0, 0}, A: 164.7288},
	{ILU: [4]int{0, 1, -1, 0}, A: -147.3228},
	{ILU: [4]int{1, 0, 0, 0}, A: -124.992},
	{ILU: [4]int{0, 1, 1, 0}, A: -109.3788},
	{ILU: [4]int{2, 0, 0, -2}, A: 55.1772},
	{ILU: [4]int{0, 0, 1, 2}, A: -45.1008},
	{ILU: [4]int{0, 0, 1, -2}, A: 39.528},
	{ILU: [4]int{4, 0, -1, 0}, A: 38.43},
	{ILU: [4]int{0, 0, 3, 0}, A: 36.1224},
	{ILU: [4]int{4, 0, -2, 0}, A: 30.7728},
	{ILU: [4]int{2, 1, -1, 0}, A: -28.3968},
	{ILU: [4]int{2, 1, 0, 0}, A: -24.3576},
	{ILU: [4]int{1, 0, -1, 0}, A: -18.5868},
	{ILU: [4]int{1, 1, 0, 0}, A: 17.9532},
	{ILU: [4]int{2, -1, 1, 0}, A: 14.5296},
	{ILU: [4]int{2, 0, 2, 0}, A: 14.3784},
	{ILU: [4]int{4, 0, 0, 0}, A: 13.8996},
	{ILU: [4]int{2, 0, -3, 0}, A: 13.194},
	{ILU: [4]int{0, 1, -2, 0}, A: -9.6804},
	{ILU: [4]int{2, 0, -1, 2}, A: -9.3672},
	{ILU: [4]int{2, -1, -2, 0}, A: 8.604},
	{ILU: [4]int{1, 0, 1, 0}, A: -8.4528},
	{ILU: [4]int{2, -2, 0, 0}, A: 8.0496},
	{ILU: [4]int{0, 1, 2, 0}, A: -7.632},
	{ILU: [4]int{0, 2, 0, 0}, A: -7.4484},
	{ILU: [4]int{2, -2, -1, 0}, A: 7.3728},
	{ILU: [4]int{2, 0, 1, -2}, A: -6.3828},
	{ILU: [4]int{2, 0, 0, 2}, A: -5.742},
	{ILU: [4]int{4, -1, -1, 0}, A: 4.374},
	{ILU: [4]int{0, 0, 2, 2}, A: -3.996},
	{ILU: [4]int{3, 0, -1, 0}, A: -3.2112},
	{ILU: [4]int{2, 1, 1, 0}, A: -2.916},
	{ILU: [4]int{4, -1, -2, 0}, A: 2.7324},
	{ILU: [4]int{0, 2, -1, 0}, A: -2.5668},
	{ILU: [4]int{2, 2, -1, 0}, A: -2.52},
	{ILU: [4]int{2, 1, -2, 0}, A: 2.4876},
	{ILU: [4]int{2, -1, 0, -2}, A: 2.1456},
	{ILU: [4]int{4, 0, 1, 0}, A: 1.9764},
	{ILU: [4]int{0, 0, 4, 0}, A: 1.9332},
	{ILU: [4]int{4, -1, 0, 0}, A: 1.872},
	{ILU: [4]int{1, 0, -2, 0}, A: -1.7532},
	{ILU: [4]int{2, 1, 0, -2}, A: -1.4364},
	{ILU: [4]int{0, 0, 2, -2}, A: -1.3716},
	{ILU: [4]int{1, 1, 1, 0}, A: 1.2636},
	{ILU: [4]int{3, 0, -2, 0}, A: -1.224},
	{ILU: [4]int{4, 0, -3, 0}, A: 1.188},
	{ILU: [4]int{2, -1, 2, 0}, A: 1.1772},
	{ILU: [4]int{0, 2, 1, 0}, A: -1.1628},
	{ILU: [4]int{1, 1, -1, 0}, A: 1.0764},
	{ILU: [4]int{2, 0, 3, 0}, A: 1.0584},
}

var mainLatitude = []MainTerm{
	{ILU: [4]int{0, 0, 0, 1}, A: 18461.2392},
	{ILU: [4]int{0, 0, 1, 1}, A: 1010.1672},
	{ILU: [4]int{0, 0, 1, -1}, A: 999.6948},
	{ILU: [4]int{2, 0, 0, -1}, A: 623.6532},
	{ILU: [4]int{2, 0, -1, 1}, A: 199.4868},
	{ILU: [4]int{2, 0, -1, -1}, A: 166.5756},
	{ILU: [4]int{2, 0, 0, 1}, A: 117.2628},
	{ILU: [4]int{0, 0, 2, 1}, A: 61.9128},
	{ILU: [4]int{2, 0, 1, -1}, A: 33.3576},
	{ILU: [4]int{0, 0, 2, -1}, A: 31.7592},
	{ILU: [4]int{2, -1, 0, -1}, A: 29.5776},
	{ILU: [4]int{2, 0, -2, -1}, A: 15.5664},
	{ILU: [4]int{2, 0, 1, 1}, A: 15.12},
	{ILU: [4]int{2, 1, 0, -1}, A: -12.0924},
	{ILU: [4]int{2, -1, -1, 1}, A: 8.8668},
	{ILU: [4]int{2, -1, 0, 1}, A: 7.9596},
	{ILU: [4]int{2, -1, -1, -1}, A: 7.434},
	{ILU: [4]int{0, 1, -1, -1}, A: -6.732},
	{ILU: [4]int{4, 0, -1, -1}, A: 6.5808},
	{ILU: [4]int{0, 1, 0, 1}, A: -6.4584},
	{ILU: [4]int{0, 0, 0, 3}, A: -6.2964},
	{ILU: [4]int{0, 1, -1, 1}, A: -5.634},
	{ILU: [4]int{1, 0, 0, 1}, A: -5.3676},
	{ILU: [4]int{0, 1, 1, 1}, A: -5.31},
	{ILU: [4]int{0, 1, 1, -1}, A: -5.076},
	{ILU: [4]int{0, 1, 0, -1}, A: -4.8384},
	{ILU: [4]int{1, 0, 0, -1}, A: -4.806},
	{ILU: [4]int{0, 0, 3, 1}, A: 3.9852},
	{ILU: [4]int{4, 0, 0, -1}, A: 3.6756},
	{ILU: [4]int{4, 0, -1, 1}, A: 2.9988},
	{ILU: [4]int{0, 0, 1, -3}, A: 2.7972},
	{ILU: [4]int{4, 0, -2, 1}, A: 2.4156},
	{ILU: [4]int{2, 0, 0, -3}, A: 2.1852},
	{ILU: [4]int{2, 0, 2, -1}, A: 2.1456},
	{ILU: [4]int{2, -1, 1, -1}, A: 1.7676},
	{ILU: [4]int{2, 0, -2, 1}, A: -1.6236},
	{ILU: [4]int{0, 0, 3, -1}, A: 1.5804},
	{ILU: [4]int{2, 0, 2, 1}, A: 1.5192},
	{ILU: [4]int{2, 0, -3, -1}, A: 1.5156},
	{ILU: [4]int{2, 1, -1, 1}, A: -1.3176},
	{ILU: [4]int{2, 1, 0, 1}, A: -1.2636},
	{ILU: [4]int{4, 0, 0, 1}, A: 1.1916},
	{ILU: [4]int{2, -1, 1, 1}, A: 1.134},
	{ILU: [4]int{2, -2, 0, -1}, A: 1.0872},
	{ILU: [4]int{0, 0, 1, 3}, A: -1.0188},
	{ILU: [4]int{2, 1, 1, -1}, A: -0.8244},
	{ILU: [4]int{1, 1, 0, -1}, A: 0.8028},
	{ILU: [4]int{1, 1, 0, 1}, A: 0.8028},
	{ILU: [4]int{0, 1, -2, -1}, A: -0.792},
	{ILU: [4]int{2, 1, -1, -1}, A: -0.792},
	{ILU: [4]int{1, 0, 1, 1}, A: -0.666},
	{ILU: [4]int{2, -1, -2, -1}, A: 0.6516},
	{ILU: [4]int{0, 1, 2, 1}, A: -0.6372},
	{ILU: [4]int{4, 0, -2, -1}, A: 0.6336},
	{ILU: [4]int{4, -1, -1, -1}, A: 0.5976},
	{ILU: [4]int{1, 0, 1, -1}, A: -0.5904},
	{ILU: [4]int{4, 0, 1, -1}, A: 0.4752},
	{ILU: [4]int{1, 0, -1, -1}, A: -0.4284},
	{ILU: [4]int{4, -1, 0, -1}, A: 0.414},
	{ILU: [4]int{2, -2, 0, 1}, A: 0.3852},
}

var mainDistance = []MainTerm{
	{ILU: [4]int{0, 0, 0, 0}, A: 385000.56},
	{ILU: [4]int{0, 0, 1, 0}, A: -20905.355},
	{ILU: [4]int{2, 0, -1, 0}, A: -3699.111},
	{ILU: [4]int{2, 0, 0, 0}, A: -2955.968},
	{ILU: [4]int{0, 0, 2, 0}, A: -569.925},
	{ILU: [4]int{0, 1, 0, 0}, A: 48.888},
	{ILU: [4]int{0, 0, 0, 2}, A: -3.149},
	{ILU: [4]int{2, 0, -2, 0}, A: 246.158},
	{ILU: [4]int{2, -1, -1, 0}, A: -152.138},
	{ILU: [4]int{2, 0, 1, 0}, A: -170.733},
	{ILU: [4]int{2, -1, 0, 0}, A: -204.586},
	{ILU: [4]int{0, 1, -1, 0}, A: -129.62},
	{ILU: [4]int{1, 0, 0, 0}, A: 108.743},
	{ILU: [4]int{0, 1, 1, 0}, A: 104.755},
	{ILU: [4]int{2, 0, 0, -2}, A: 10.321},
	{ILU: [4]int{0, 0, 1, -2}, A: 79.661},
	{ILU: [4]int{4, 0, -1, 0}, A: -34.782},
	{ILU: [4]int{0, 0, 3, 0}, A: -23.21},
	{ILU: [4]int{4, 0, -2, 0}, A: -21.636},
	{ILU: [4]int{2, 1, -1, 0}, A: 24.208},
	{ILU: [4]int{2, 1, 0, 0}, A: 30.824},
	{ILU: [4]int{1, 0, -1, 0}, A: -8.379},
	{ILU: [4]int{1, 1, 0, 0}, A: -16.675},
	{ILU: [4]int{2, -1, 1, 0}, A: -12.831},
	{ILU: [4]int{2, 0, 2, 0}, A: -10.445},
	{ILU: [4]int{4, 0, 0, 0}, A: -11.65},
	{ILU: [4]int{2, 0, -3, 0}, A: 14.403},
	{ILU: [4]int{0, 1, -2, 0}, A: -7.003},
	{ILU: [4]int{2, -1, -2, 0}, A: 10.056},
	{ILU: [4]int{1, 0, 1, 0}, A: 6.322},
	{ILU: [4]int{2, -2, 0, 0}, A: -9.884},
	{ILU: [4]int{0, 1, 2, 0}, A: 5.751},
	{ILU: [4]int{2, -2, -1, 0}, A: -4.95},
	{ILU: [4]int{2, 0, 1, -2}, A: 4.13},
	{ILU: [4]int{4, -1, -1, 0}, A: -3.958},
	{ILU: [4]int{3, 0, -1, 0}, A: 3.258},
	{ILU: [4]int{2, 1, 1, 0}, A: 2.616},
	{ILU: [4]int{4, -1, -2, 0}, A: -1.897},
	{ILU: [4]int{0, 2, -1, 0}, A: -2.117},
	{ILU: [4]int{2, 2, -1, 0}, A: 2.354},
	{ILU: [4]int{4, 0, 1, 0}, A: -1.423},
	{ILU: [4]int{0, 0, 4, 0}, A: -1.117},
	{ILU: [4]int{4, -1, 0, 0}, A: -1.571},
	{ILU: [4]int{1, 0, -2, 0}, A: -1.739},
	{ILU: [4]int{0, 0, 2, -2}, A: -4.421},
	{ILU: [4]int{0, 2, 1, 0}, A: 1.165},
	{ILU: [4]int{2, 0, -1, -2}, A: 8.752},
}

// Earth figure, ζ - F, ζ and ζ ± l.
var (
	figureLongitude = []FigureTerm{
		{IZ: 1, ILU: [4]int{0, 0, 0, -1}, Phase: 0, A: 7.0632, Period: 6798.38},
	}
	figureLatitude = []FigureTerm{
		{IZ: 1, ILU: [4]int{0, 0, 0, 0}, Phase: 0, A: -8.046, Period: 27.32},
		{IZ: 1, ILU: [4]int{0, 0, -1, 0}, Phase: 0, A: 0.4572, Period: 3231.5},
		{IZ: 1, ILU: [4]int{0, 0, 1, 0}, Phase: 0, A: -0.414, Period: 13.72},
	}
)

// Venus: 18V - 16T - l in longitude, and with ∓F in latitude.
var (
	venusLongitude = []PlanetaryTerm{
		{IPla: [11]int{0, 18, -16, 0, 0, 0, 0, 0, 0, -1, 0}, Phase: 26.5402, A: 14.2488, Period: 99729.0},
	}
	venusLatitude = []PlanetaryTerm{
		{IPla: [11]int{0, 18, -16, 0, 0, 0, 0, 0, 0, -1, -1}, Phase: 26.5402, A: 0.63, Period: 27.22},
		{IPla: [11]int{0, 18, -16, 0, 0, 0, 0, 0, 0, -1, 1}, Phase: 26.5402, A: 0.63, Period: 27.20},
	}
)

// Secular decrease of the solar eccentricity on the terms in l' above, with
// E = 1 - 0.002516t - 0.0000074t²: the part linear in t goes to the planetary
// table 2 series in t, the quadratic part to the series in t².
var (
	eccentricityLongitude = []PlanetaryTerm{
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}, Phase: 0, A: 1.676707, Period: 365.26},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, -1, 0}, Phase: 0, A: -0.516881, Period: 34.85},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 0, 0}, Phase: 0, A: -0.4144577, Period: 15.39},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0}, Phase: 0, A: 0.3706642, Period: 29.80},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0}, Phase: 0, A: 0.2751971, Period: 25.62},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, -1, 0}, Phase: 0, A: 0.07144635, Period: 29.26},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 0, 0}, Phase: 0, A: 0.06128372, Period: 14.19},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0}, Phase: 0, A: -0.04517025, Period: 27.32},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 1, 0}, Phase: 0, A: -0.03655647, Period: 9.87},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, -2, 0}, Phase: 0, A: 0.02435589, Period: 14.32},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, -2, 0}, Phase: 0, A: -0.02164766, Period: 131.67},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -2, 0, 0}, Phase: 0, A: -0.04050559, Period: 16.06},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 0}, Phase: 0, A: 0.01920211, Period: 13.28},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0}, Phase: 0, A: 0.03748035, Period: 182.63},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -2, -1, 0}, Phase: 0, A: -0.03709993, Period: 38.52},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, -1, 0}, Phase: 0, A: -0.01100498, Period: 10.37},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 1, 0}, Phase: 0, A: 0.007336656, Period: 9.37},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, -2, 0}, Phase: 0, A: -0.006874718, Period: 16.63},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 2, -1, 0}, Phase: 0, A: 0.01291614, Period: 32.45},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 2, -1, 0}, Phase: 0, A: 0.01268064, Period: 27.09},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, -2, 0}, Phase: 0, A: -0.006258802, Period: 471.89},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 0, -2}, Phase: 0, A: -0.00539833, Period: 117.54},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, 0, 0}, Phase: 0, A: -0.004709952, Period: 7.53},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 0, -2}, Phase: 0, A: 0.003613982, Period: 329.79},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0}, Phase: 0, A: -0.003179218, Period: 13.72},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 2, 0}, Phase: 0, A: -0.002961835, Period: 7.27},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 2, 1, 0}, Phase: 0, A: 0.00585121, Period: 23.94},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 1, 1, -1, 0}, Phase: 0, A: -0.002708222, Period: 3232.86},
	}
	eccentricityLatitude = []PlanetaryTerm{
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 0, -1}, Phase: 0, A: -0.07441724, Period: 35.41},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 0, -1}, Phase: 0, A: 0.03042448, Period: 29.66},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, -1, 1}, Phase: 0, A: -0.02230887, Period: 15.28},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 0, 1}, Phase: 0, A: -0.02002635, Period: 9.83},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, -1, -1}, Phase: 0, A: -0.01870394, Period: 124.20},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, -1, -1}, Phase: 0, A: 0.01693771, Period: 14.22},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1}, Phase: 0, A: 0.01624933, Period: 25.33},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 1}, Phase: 0, A: 0.01417514, Period: 313.06},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1}, Phase: 0, A: 0.01335996, Period: 13.20},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, -1}, Phase: 0, A: 0.01277122, Period: 438.36},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, -1}, Phase: 0, A: 0.01217341, Period: 29.40},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 1, -1}, Phase: 0, A: -0.004447282, Period: 15.50},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, -1, 1}, Phase: 0, A: 0.003315082, Period: 14.10},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 0, 1}, Phase: 0, A: 0.003179218, Period: 9.33},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 1, 1}, Phase: 0, A: -0.002853144, Period: 7.24},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -2, 0, -1}, Phase: 0, A: -0.00547079, Period: 39.21},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 1, -1}, Phase: 0, A: 0.00207419, Period: 14.28},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, -1}, Phase: 0, A: -0.002019845, Period: 6792.35},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1}, Phase: 0, A: -0.002019845, Period: 13.63},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, -2, -1}, Phase: 0, A: 0.001992672, Period: 9.38},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, -1, -1}, Phase: 0, A: 0.001992672, Period: 388.25},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, -2, -1}, Phase: 0, A: -0.001639426, Period: 22.55},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 1}, Phase: 0, A: 0.001603195, Period: 8.92},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, -1, -1}, Phase: 0, A: -0.001503562, Period: 16.76},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, 0, -1}, Phase: 0, A: -0.001041624, Period: 10.42},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -2, 0, 1}, Phase: 0, A: -0.001938326, Period: 10.10},
	}
	eccentricityDistance = []PlanetaryTerm{
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}, Phase: 90, A: -0.1230022, Period: 365.26},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, -1, 0}, Phase: 90, A: 0.3827792, Period: 34.85},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 0, 0}, Phase: 90, A: 0.5147384, Period: 15.39},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0}, Phase: 90, A: 0.3261239, Period: 29.80},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0}, Phase: 90, A: -0.2635636, Period: 25.62},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, -1, 0}, Phase: 90, A: -0.06090733, Period: 29.26},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 0, 0}, Phase: 90, A: -0.07755318, Period: 14.19},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0}, Phase: 90, A: 0.0419543, Period: 27.32},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, 1, 0}, Phase: 90, A: 0.0322828, Period: 9.87},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, -2, 0}, Phase: 90, A: 0.01761955, Period: 14.32},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -1, -2, 0}, Phase: 90, A: -0.0253009, Period: 131.67},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -2, 0, 0}, Phase: 90, A: 0.04973629, Period: 16.06},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 0}, Phase: 90, A: -0.01446952, Period: 13.28},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, -2, -1, 0}, Phase: 90, A: 0.0249084, Period: 38.52},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, -1, 0}, Phase: 90, A: 0.009958328, Period: 10.37},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 1, 1, 0}, Phase: 90, A: -0.006581856, Period: 9.37},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, -2, 0}, Phase: 90, A: 0.004772852, Period: 16.63},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 2, -1, 0}, Phase: 90, A: 0.01065274, Period: 32.45},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 2, 2, -1, 0}, Phase: 90, A: -0.01184533, Period: 27.09},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 4, -1, 0, 0}, Phase: 90, A: 0.003952636, Period: 7.53},
		{IPla: [11]int{0, 0, 0, 0, 0, 0, 0, 0, 2, 1, 0}, Phase: 90, A: -0.00586228, Period: 23.94},
	}
	eccentricity2Longitude = []FigureTerm{
		{ILU: [4]int{0, 1, 0, 0}, Phase: 0, A: 0.0049315, Period: 365.26},
		{ILU: [4]int{2, -1, -1, 0}, Phase: 0, A: -0.0015202, Period: 34.85},
		{ILU: [4]int{2, -1, 0, 0}, Phase: 0, A: -0.001219, Period: 15.39},
		{ILU: [4]int{0, 1, -1, 0}, Phase: 0, A: 0.0010902, Period: 29.80},
		{ILU: [4]int{0, 1, 1, 0}, Phase: 0, A: 0.0008094, Period: 25.62},
		{ILU: [4]int{2, 1, -1, 0}, Phase: 0, A: 0.00021014, Period: 29.26},
		{ILU: [4]int{2, 1, 0, 0}, Phase: 0, A: 0.00018025, Period: 14.19},
		{ILU: [4]int{1, 1, 0, 0}, Phase: 0, A: -0.00013285, Period: 27.32},
		{ILU: [4]int{2, -1, 1, 0}, Phase: 0, A: -0.00010752, Period: 9.87},
		{ILU: [4]int{0, 1, -2, 0}, Phase: 0, A: 0.000071635, Period: 14.32},
		{ILU: [4]int{2, -1, -2, 0}, Phase: 0, A: -0.00006367, Period: 131.67},
		{ILU: [4]int{2, -2, 0, 0}, Phase: 0, A: -0.000068178, Period: 16.06},
		{ILU: [4]int{0, 1, 2, 0}, Phase: 0, A: 0.000056477, Period: 13.28},
		{ILU: [4]int{0, 2, 0, 0}, Phase: 0, A: 0.000063086, Period: 182.63},
		{ILU: [4]int{2, -2, -1, 0}, Phase: 0, A: -0.000062446, Period: 38.52},
		{ILU: [4]int{4, -1, -1, 0}, Phase: 0, A: -0.000032368, Period: 10.37},
		{ILU: [4]int{2, 1, 1, 0}, Phase: 0, A: 0.000021578, Period: 9.37},
		{ILU: [4]int{4, -1, -2, 0}, Phase: 0, A: -0.00002022, Period: 16.63},
		{ILU: [4]int{0, 2, -1, 0}, Phase: 0, A: 0.00002174, Period: 32.45},
		{ILU: [4]int{2, 2, -1, 0}, Phase: 0, A: 0.000021344, Period: 27.09},
		{ILU: [4]int{2, 1, -2, 0}, Phase: 0, A: -0.000018408, Period: 471.89},
		{ILU: [4]int{2, -1, 0, -2}, Phase: 0, A: -0.000015877, Period: 117.54},
		{ILU: [4]int{4, -1, 0, 0}, Phase: 0, A: -0.000013853, Period: 7.53},
		{ILU: [4]int{2, 1, 0, -2}, Phase: 0, A: 0.000010629, Period: 329.79},
		{ILU: [4]int{1, 1, 1, 0}, Phase: 0, A: -0.0000093506, Period: 13.72},
		{ILU: [4]int{2, -1, 2, 0}, Phase: 0, A: -0.0000087113, Period: 7.27},
		{ILU: [4]int{0, 2, 1, 0}, Phase: 0, A: 0.0000098486, Period: 23.94},
		{ILU: [4]int{1, 1, -1, 0}, Phase: 0, A: -0.0000079654, Period: 3232.86},
	}
	eccentricity2Latitude = []FigureTerm{
		{ILU: [4]int{2, -1, 0, -1}, Phase: 0, A: -0.00021887, Period: 35.41},
		{ILU: [4]int{2, 1, 0, -1}, Phase: 0, A: 0.000089484, Period: 29.66},
		{ILU: [4]int{2, -1, -1, 1}, Phase: 0, A: -0.000065614, Period: 15.28},
		{ILU: [4]int{2, -1, 0, 1}, Phase: 0, A: -0.000058901, Period: 9.83},
		{ILU: [4]int{2, -1, -1, -1}, Phase: 0, A: -0.000055012, Period: 124.20},
		{ILU: [4]int{0, 1, -1, -1}, Phase: 0, A: 0.000049817, Period: 14.22},
		{ILU: [4]int{0, 1, 0, 1}, Phase: 0, A: 0.000047792, Period: 25.33},
		{ILU: [4]int{0, 1, -1, 1}, Phase: 0, A: 0.000041692, Period: 313.06},
		{ILU: [4]int{0, 1, 1, 1}, Phase: 0, A: 0.000039294, Period: 13.20},
		{ILU: [4]int{0, 1, 1, -1}, Phase: 0, A: 0.000037562, Period: 438.36},
		{ILU: [4]int{0, 1, 0, -1}, Phase: 0, A: 0.000035804, Period: 29.40},
		{ILU: [4]int{2, -1, 1, -1}, Phase: 0, A: -0.00001308, Period: 15.50},
		{ILU: [4]int{2, 1, -1, 1}, Phase: 0, A: 0.0000097502, Period: 14.10},
		{ILU: [4]int{2, 1, 0, 1}, Phase: 0, A: 0.0000093506, Period: 9.33},
		{ILU: [4]int{2, -1, 1, 1}, Phase: 0, A: -0.0000083916, Period: 7.24},
		{ILU: [4]int{2, -2, 0, -1}, Phase: 0, A: -0.0000092083, Period: 39.21},
		{ILU: [4]int{2, 1, 1, -1}, Phase: 0, A: 0.0000061006, Period: 14.28},
		{ILU: [4]int{1, 1, 0, -1}, Phase: 0, A: -0.0000059407, Period: 6792.35},
		{ILU: [4]int{1, 1, 0, 1}, Phase: 0, A: -0.0000059407, Period: 13.63},
		{ILU: [4]int{0, 1, -2, -1}, Phase: 0, A: 0.0000058608, Period: 9.38},
		{ILU: [4]int{2, 1, -1, -1}, Phase: 0, A: 0.0000058608, Period: 388.25},
		{ILU: [4]int{2, -1, -2, -1}, Phase: 0, A: -0.0000048218, Period: 22.55},
		{ILU: [4]int{0, 1, 2, 1}, Phase: 0, A: 0.0000047153, Period: 8.92},
		{ILU: [4]int{4, -1, -1, -1}, Phase: 0, A: -0.0000044222, Period: 16.76},
		{ILU: [4]int{4, -1, 0, -1}, Phase: 0, A: -0.0000030636, Period: 10.42},
		{ILU: [4]int{2, -2, 0, 1}, Phase: 0, A: -0.0000032625, Period: 10.10},
	}
	eccentricity2Distance = []FigureTerm{
		{ILU: [4]int{0, 1, 0, 0}, Phase: 90, A: -0.00036177, Period: 365.26},
		{ILU: [4]int{2, -1, -1, 0}, Phase: 90, A: 0.0011258, Period: 34.85},
		{ILU: [4]int{2, -1, 0, 0}, Phase: 90, A: 0.0015139, Period: 15.39},
		{ILU: [4]int{0, 1, -1, 0}, Phase: 90, A: 0.00095919, Period: 29.80},
		{ILU: [4]int{0, 1, 1, 0}, Phase: 90, A: -0.00077519, Period: 25.62},
		{ILU: [4]int{2, 1, -1, 0}, Phase: 90, A: -0.00017914, Period: 29.26},
		{ILU: [4]int{2, 1, 0, 0}, Phase: 90, A: -0.0002281, Period: 14.19},
		{ILU: [4]int{1, 1, 0, 0}, Phase: 90, A: 0.0001234, Period: 27.32},
		{ILU: [4]int{2, -1, 1, 0}, Phase: 90, A: 0.000094949, Period: 9.87},
		{ILU: [4]int{0, 1, -2, 0}, Phase: 90, A: 0.000051822, Period: 14.32},
		{ILU: [4]int{2, -1, -2, 0}, Phase: 90, A: -0.000074414, Period: 131.67},
		{ILU: [4]int{2, -2, 0, 0}, Phase: 90, A: 0.000083715, Period: 16.06},
		{ILU: [4]int{0, 1, 2, 0}, Phase: 90, A: -0.000042557, Period: 13.28},
		{ILU: [4]int{2, -2, -1, 0}, Phase: 90, A: 0.000041925, Period: 38.52},
		{ILU: [4]int{4, -1, -1, 0}, Phase: 90, A: 0.000029289, Period: 10.37},
		{ILU: [4]int{2, 1, 1, 0}, Phase: 90, A: -0.000019358, Period: 9.37},
		{ILU: [4]int{4, -1, -2, 0}, Phase: 90, A: 0.000014038, Period: 16.63},
		{ILU: [4]int{0, 2, -1, 0}, Phase: 90, A: 0.00001793, Period: 32.45},
		{ILU: [4]int{2, 2, -1, 0}, Phase: 90, A: -0.000019938, Period: 27.09},
		{ILU: [4]int{4, -1, 0, 0}, Phase: 90, A: 0.000011625, Period: 7.53},
		{ILU: [4]int{0, 2, 1, 0}, Phase: 90, A: -0.0000098673, Period: 23.94},
	}
)

// principalSeries returns the principal terms as the 36 series of the theory.
func principalSeries() (s [NumSeries]Series) {
	for i := range s {
		s[i].Number = i + 1
	}
	s[0].Main = mainLongitude
	s[1].Main = mainLatitude
	s[2].Main = mainDistance
	s[3].Figure = figureLongitude
	s[4].Figure = figureLatitude
	s[9].Planetary = venusLongitude
	s[10].Planetary = venusLatitude
	s[18].Planetary = eccentricityLongitude
	s[19].Planetary = eccentricityLatitude
	s[20].Planetary = eccentricityDistance
	s[33].Figure = eccentricity2Longitude
	s[34].Figure = eccentricity2Latitude
	s[35].Figure = eccentricity2Distance
	return
}
