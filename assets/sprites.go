package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	HeroFrameSize   = 16
	HeroFrameCount  = 4
	heroSheetColumn = HeroFrameCount
)

// HeroClips lists the hero sheet rows from top to bottom. hero.yaml refers
// to clips by these row numbers.
var HeroClips = []string{
	"idle-down", "idle-up", "idle-side",
	"walk-down", "walk-up", "walk-side",
	"attack-down", "attack-up", "attack-side",
	"attack-weapon-down", "attack-weapon-up", "attack-weapon-side",
}

var clipBody = map[string]color.RGBA{
	"idle":          colornames.Steelblue,
	"walk":          colornames.Royalblue,
	"attack":        colornames.Orangered,
	"attack-weapon": colornames.Goldenrod,
}

func heroSheet() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, heroSheetColumn*HeroFrameSize, len(HeroClips)*HeroFrameSize))
	for row, clip := range HeroClips {
		action, dir := splitClip(clip)
		body := clipBody[action]
		for col := 0; col < heroSheetColumn; col++ {
			x0 := col * HeroFrameSize
			y0 := row * HeroFrameSize
			bob := col % 2
			fillRect(img, image.Rect(x0+3, y0+2+bob, x0+13, y0+15), body)
			fillRect(img, image.Rect(x0+5, y0+1+bob, x0+11, y0+6+bob), colornames.Peachpuff)

			// marker on the side the hero faces
			switch dir {
			case "down":
				fillRect(img, image.Rect(x0+6, y0+4+bob, x0+10, y0+5+bob), colornames.Black)
			case "up":
				fillRect(img, image.Rect(x0+5, y0+1+bob, x0+11, y0+3+bob), colornames.Saddlebrown)
			case "side":
				fillRect(img, image.Rect(x0+9, y0+3+bob, x0+11, y0+5+bob), colornames.Black)
			}

			if action == "attack" || action == "attack-weapon" {
				reach := 2 + col
				fillRect(img, weaponRect(dir, x0, y0, reach), colornames.Silver)
			}
		}
	}
	return img
}

func splitClip(clip string) (action, dir string) {
	for _, d := range []string{"down", "up", "side"} {
		suffix := "-" + d
		if len(clip) > len(suffix) && clip[len(clip)-len(suffix):] == suffix {
			return clip[:len(clip)-len(suffix)], d
		}
	}
	return clip, ""
}

func weaponRect(dir string, x0, y0, reach int) image.Rectangle {
	switch dir {
	case "up":
		return image.Rect(x0+7, y0, x0+9, y0+reach)
	case "side":
		return image.Rect(x0+HeroFrameSize-reach, y0+8, x0+HeroFrameSize, y0+10)
	default:
		return image.Rect(x0+7, y0+HeroFrameSize-reach, x0+9, y0+HeroFrameSize)
	}
}

func heart() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 9, 8))
	rows := []string{
		".XX...XX.",
		"XXXX.XXXX",
		"XXXXXXXXX",
		"XXXXXXXXX",
		".XXXXXXX.",
		"..XXXXX..",
		"...XXX...",
		"....X....",
	}
	for y, row := range rows {
		for x, c := range row {
			if c == 'X' {
				img.Set(x, y, colornames.Crimson)
			}
		}
	}
	return img
}

// arrow points right; the renderer rotates it to the flight direction.
func arrow() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 12, 3))
	fillRect(img, image.Rect(0, 1, 10, 2), colornames.Burlywood)
	fillRect(img, image.Rect(10, 0, 12, 3), colornames.Silver)
	fillRect(img, image.Rect(0, 0, 2, 1), colornames.White)
	fillRect(img, image.Rect(0, 2, 2, 3), colornames.White)
	return img
}

// tomb is drawn large and scaled down by its prefab.
func tomb() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 160, 160))
	fillRect(img, image.Rect(30, 20, 130, 160), colornames.Slategray)
	fillRect(img, image.Rect(50, 0, 110, 20), colornames.Slategray)
	fillRect(img, image.Rect(72, 35, 88, 110), colornames.Lightgray)
	fillRect(img, image.Rect(50, 55, 110, 70), colornames.Lightgray)
	return img
}

func slime() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 14, 10))
	fillRect(img, image.Rect(2, 0, 12, 2), colornames.Limegreen)
	fillRect(img, image.Rect(0, 2, 14, 10), colornames.Limegreen)
	fillRect(img, image.Rect(3, 3, 5, 5), colornames.Black)
	fillRect(img, image.Rect(9, 3, 11, 5), colornames.Black)
	return img
}

func spike() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 14, 14))
	for x := 0; x < 14; x++ {
		h := 7 - abs(x%7-3)*2
		fillRect(img, image.Rect(x, 14-h*2, x+1, 14), colornames.Lightsteelblue)
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
