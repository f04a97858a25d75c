package main

import (
	"embed"
	"fmt"
	"path"

	"fyne.io/fyne/v2"
)

//go:embed assets
var embeddedAssets embed.FS

// atlasSize is the number of card face slots in the sprite set: 52 colored
// faces, 2 colorless wild faces and 8 color-assigned wild faces.
const atlasSize = 64

var (
	resourceCardBack   fyne.Resource
	resourceBackground fyne.Resource
	resourceCardFaces  = make(map[int]fyne.Resource)
)

// loadResources initializes the global resource cache. This must be called
// after the Fyne app has been created.
func loadResources() {
	resourceCardBack = mustLoadResource("assets/cards/back.png")
	resourceBackground = mustLoadResource("assets/ui/background.png")
	// Card faces are named by atlas index. Indices 54 and 55 are unused
	// slots in the sprite set.
	for index := 0; index < atlasSize; index++ {
		if index == 54 || index == 55 {
			continue
		}
		resourceCardFaces[index] = mustLoadResource(fmt.Sprintf("assets/cards/%d.png", index))
	}
}

// cardResource returns the face image for a card. Falls back to the card
// back so a missing face never renders as a nil resource.
func cardResource(card Card) fyne.Resource {
	res, ok := resourceCardFaces[card.AtlasIndex()]
	if !ok {
		return resourceCardBack
	}
	return res
}

// mustLoadResource loads an embedded asset and panics on error; a missing
// asset is a build defect, not a runtime condition.
func mustLoadResource(p string) fyne.Resource {
	data, err := embeddedAssets.ReadFile(p)
	if err != nil {
		panic("failed to load embedded asset " + p + ": " + err.Error())
	}
	return fyne.NewStaticResource(path.Base(p), data)
}
