package utils

import (
	"github.com/common-nighthawk/go-figure"
)

func DrawBanner() {
	figure.NewColorFigure("Azure Cost", "", "blue", true).Print()
}
