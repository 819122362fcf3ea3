// Package display holds pure string helpers for rendering material and
// modifier combinations. No database access; unknown ids fall back to
// reasonable defaults.
package display

import "strings"

// materialNames maps known material ids to their display names.
var materialNames = map[string]string{
	"pla":   "PLA",
	"petg":  "PETG",
	"abs":   "ABS",
	"tpu":   "TPU",
	"asa":   "ASA",
	"nylon": "Nylon",
	"pc":    "PC",
	"pa6":   "PA6",
	"paht":  "PAHT",
	"ppa":   "PPA",
}

type modifierInfo struct {
	name   string
	suffix string
}

// modifierInfos maps known modifier ids to their display name and short
// suffix. The "basic" modifier renders as nothing at all.
var modifierInfos = map[string]modifierInfo{
	"basic":            {name: "Basic", suffix: ""},
	"matte":            {name: "Matte", suffix: "Matte"},
	"silk":             {name: "Silk", suffix: "Silk"},
	"silk+":            {name: "Silk+", suffix: "Silk+"},
	"silk-multi-color": {name: "Silk Multi-Color", suffix: "Silk MC"},
	"marble":           {name: "Marble", suffix: "Marble"},
	"sparkle":          {name: "Sparkle", suffix: "Sparkle"},
	"metal":            {name: "Metal", suffix: "Metal"},
	"galaxy":           {name: "Galaxy", suffix: "Galaxy"},
	"translucent":      {name: "Translucent", suffix: "Translucent"},
	"glow-in-dark":     {name: "Glow-in-Dark", suffix: "Glow"},
	"gradient":         {name: "Gradient", suffix: "Gradient"},
	"wood":             {name: "Wood", suffix: "Wood"},
	"tough+":           {name: "Tough+", suffix: "Tough+"},
	"aero":             {name: "Aero", suffix: "Aero"},
	"carbon-fiber":     {name: "Carbon Fiber", suffix: "CF"},
	"glass-fiber":      {name: "Glass Fiber", suffix: "GF"},
	"hf":               {name: "High Flow", suffix: "HF"},
	"support":          {name: "Support", suffix: "Support"},
	"95a-hf":           {name: "95A HF", suffix: "95A HF"},
	"for-ams":          {name: "for AMS", suffix: "AMS"},
	"90a":              {name: "90A", suffix: "90A"},
	"85a":              {name: "85A", suffix: "85A"},
}

func materialName(material string) string {
	if name, ok := materialNames[material]; ok {
		return name
	}
	return strings.ToUpper(material)
}

// FormatMaterial renders the full display name for a material and optional
// modifier, such as "PLA Carbon Fiber" or just "PLA". The "basic" modifier
// is elided.
func FormatMaterial(material, modifier string) string {
	matName := materialName(material)

	if modifier == "" || modifier == "basic" {
		return matName
	}

	modName := modifier
	if info, ok := modifierInfos[modifier]; ok {
		modName = info.name
	}

	return matName + " " + modName
}

// MaterialDisplay renders the short form using the modifier suffix, such as
// "PLA-CF" or just "PLA" when the modifier has no suffix.
func MaterialDisplay(material, modifier string) string {
	matName := materialName(material)

	if modifier == "" || modifier == "basic" {
		return matName
	}

	suffix := modifier
	if info, ok := modifierInfos[modifier]; ok {
		suffix = info.suffix
	}

	if suffix == "" {
		return matName
	}
	return matName + "-" + suffix
}
