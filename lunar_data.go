package datemetrics

import "time"

// lunarNewYears maps year-LunarYearMin to the Gregorian date of that year's
// Lunar New Year (the first day of the first month of the Chinese calendar).
var lunarNewYears = [LunarYearMax - LunarYearMin]lunarDate{
	// 1800
	{time.January, 25},
	{time.February, 13},
	{time.February, 3},
	{time.January, 23},
	{time.February, 11},
	{time.January, 31},
	{time.February, 18},
	{time.February, 7},
	{time.January, 28},
	{time.February, 14},

	// 1810
	{time.February, 4},
	{time.January, 25},
	{time.February, 13},
	{time.February, 1},
	{time.January, 21},
	{time.February, 9},
	{time.January, 29},
	{time.February, 16},
	{time.February, 5},
	{time.January, 26},

	// 1820
	{time.February, 14},
	{time.February, 3},
	{time.January, 23},
	{time.February, 11},
	{time.January, 31},
	{time.February, 18},
	{time.February, 7},
	{time.January, 27},
	{time.February, 15},
	{time.February, 4},

	// 1830
	{time.January, 25},
	{time.February, 13},
	{time.February, 2},
	{time.February, 20},
	{time.February, 9},
	{time.January, 29},
	{time.February, 17},
	{time.February, 5},
	{time.January, 26},
	{time.February, 14},

	// 1840
	{time.February, 3},
	{time.January, 23},
	{time.February, 10},
	{time.January, 30},
	{time.February, 18},
	{time.February, 7},
	{time.January, 27},
	{time.February, 15},
	{time.February, 5},
	{time.January, 24},

	// 1850
	{time.February, 12},
	{time.February, 1},
	{time.February, 20},
	{time.February, 8},
	{time.January, 29},
	{time.February, 17},
	{time.February, 6},
	{time.January, 26},
	{time.February, 14},
	{time.February, 3},

	// 1860
	{time.January, 23},
	{time.February, 10},
	{time.January, 30},
	{time.February, 18},
	{time.February, 8},
	{time.January, 27},
	{time.February, 15},
	{time.February, 5},
	{time.January, 25},
	{time.February, 11},

	// 1870
	{time.January, 31},
	{time.February, 19},
	{time.February, 9},
	{time.January, 29},
	{time.February, 17},
	{time.February, 6},
	{time.January, 26},
	{time.February, 13},
	{time.February, 2},
	{time.January, 22},

	// 1880
	{time.February, 10},
	{time.January, 30},
	{time.February, 18},
	{time.February, 8},
	{time.January, 28},
	{time.February, 15},
	{time.February, 4},
	{time.January, 24},
	{time.February, 12},
	{time.January, 31},

	// 1890
	{time.January, 21},
	{time.February, 9},
	{time.January, 30},
	{time.February, 17},
	{time.February, 6},
	{time.January, 26},
	{time.February, 14},
	{time.February, 2},
	{time.January, 22},
	{time.February, 10},

	// 1900
	{time.January, 31},
	{time.February, 19},
	{time.February, 8},
	{time.January, 29},
	{time.February, 16},
	{time.February, 4},
	{time.January, 25},
	{time.February, 13},
	{time.February, 2},
	{time.January, 22},

	// 1910
	{time.February, 10},
	{time.January, 30},
	{time.February, 18},
	{time.February, 6},
	{time.January, 26},
	{time.February, 14},
	{time.February, 3},
	{time.January, 23},
	{time.February, 11},
	{time.February, 1},

	// 1920
	{time.February, 20},
	{time.February, 8},
	{time.January, 28},
	{time.February, 16},
	{time.February, 5},
	{time.January, 24},
	{time.February, 13},
	{time.February, 2},
	{time.January, 23},
	{time.February, 10},

	// 1930
	{time.January, 30},
	{time.February, 17},
	{time.February, 6},
	{time.January, 26},
	{time.February, 14},
	{time.February, 4},
	{time.January, 24},
	{time.February, 11},
	{time.January, 31},
	{time.February, 19},

	// 1940
	{time.February, 8},
	{time.January, 27},
	{time.February, 15},
	{time.February, 5},
	{time.January, 25},
	{time.February, 13},
	{time.February, 2},
	{time.January, 22},
	{time.February, 10},
	{time.January, 29},

	// 1950
	{time.February, 17},
	{time.February, 6},
	{time.January, 27},
	{time.February, 14},
	{time.February, 3},
	{time.January, 24},
	{time.February, 12},
	{time.January, 31},
	{time.February, 18},
	{time.February, 8},

	// 1960
	{time.January, 28},
	{time.February, 15},
	{time.February, 4},
	{time.January, 25},
	{time.February, 13},
	{time.February, 2},
	{time.January, 21},
	{time.February, 9},
	{time.January, 30},
	{time.February, 17},

	// 1970
	{time.February, 6},
	{time.January, 27},
	{time.February, 15},
	{time.February, 3},
	{time.January, 23},
	{time.February, 11},
	{time.January, 31},
	{time.February, 18},
	{time.February, 7},
	{time.January, 28},

	// 1980
	{time.February, 16},
	{time.February, 5},
	{time.January, 25},
	{time.February, 13},
	{time.February, 2},
	{time.February, 20},
	{time.February, 9},
	{time.January, 29},
	{time.February, 17},
	{time.February, 6},

	// 1990
	{time.January, 27},
	{time.February, 15},
	{time.February, 4},
	{time.January, 23},
	{time.February, 10},
	{time.January, 31},
	{time.February, 19},
	{time.February, 7},
	{time.January, 28},
	{time.February, 16},

	// 2000
	{time.February, 5},
	{time.January, 24},
	{time.February, 12},
	{time.February, 1},
	{time.January, 22},
	{time.February, 9},
	{time.January, 29},
	{time.February, 18},
	{time.February, 7},
	{time.January, 26},

	// 2010
	{time.February, 14},
	{time.February, 3},
	{time.January, 23},
	{time.February, 10},
	{time.January, 31},
	{time.February, 19},
	{time.February, 8},
	{time.January, 28},
	{time.February, 16},
	{time.February, 5},

	// 2020
	{time.January, 25},
	{time.February, 12},
	{time.February, 1},
	{time.January, 22},
	{time.February, 10},
	{time.January, 29},
	{time.February, 17},
	{time.February, 6},
	{time.January, 26},
	{time.February, 13},

	// 2030
	{time.February, 3},
	{time.January, 23},
	{time.February, 11},
	{time.January, 31},
	{time.February, 19},
	{time.February, 8},
	{time.January, 28},
	{time.February, 15},
	{time.February, 4},
	{time.January, 24},

	// 2040
	{time.February, 12},
	{time.February, 1},
	{time.January, 22},
	{time.February, 10},
	{time.January, 30},
	{time.February, 17},
	{time.February, 6},
	{time.January, 26},
	{time.February, 14},
	{time.February, 2},

	// 2050
	{time.January, 23},
	{time.February, 11},
	{time.February, 1},
	{time.February, 19},
	{time.February, 8},
	{time.January, 28},
	{time.February, 15},
	{time.February, 4},
	{time.January, 24},
	{time.February, 12},

	// 2060
	{time.February, 2},
	{time.January, 21},
	{time.February, 9},
	{time.January, 29},
	{time.February, 17},
	{time.February, 5},
	{time.January, 26},
	{time.February, 14},
	{time.February, 3},
	{time.January, 23},

	// 2070
	{time.February, 11},
	{time.January, 31},
	{time.February, 19},
	{time.February, 7},
	{time.January, 27},
	{time.February, 15},
	{time.February, 5},
	{time.January, 24},
	{time.February, 12},
	{time.February, 2},

	// 2080
	{time.January, 22},
	{time.February, 9},
	{time.January, 29},
	{time.February, 17},
	{time.February, 6},
	{time.January, 26},
	{time.February, 14},
	{time.February, 3},
	{time.January, 24},
	{time.February, 10},

	// 2090
	{time.January, 30},
	{time.February, 18},
	{time.February, 7},
	{time.January, 27},
	{time.February, 15},
	{time.February, 5},
	{time.January, 25},
	{time.February, 12},
	{time.February, 1},
	{time.January, 21},

	// 2100
	{time.February, 9},
}
