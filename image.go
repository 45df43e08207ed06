package compendium

import (
	"context"
	"fmt"
)

// EntryImage is a handle to an entry's image, bound to the endpoint the
// entry was resolved from. The bytes are fetched on demand and never
// cached.
type EntryImage struct {
	entry  Entry
	url    string
	source Mode
	api    *endpoint
}

func newEntryImage(entry Entry, source Mode, api *endpoint) (*EntryImage, error) {
	imageURL := entry.ImageURL()
	if imageURL == "" {
		return nil, fmt.Errorf("entry %q has no image", entry.Name())
	}

	return &EntryImage{
		entry:  entry,
		url:    imageURL,
		source: source,
		api:    api,
	}, nil
}

// URL returns the image URL.
func (i *EntryImage) URL() string {
	return i.url
}

// Entry returns the entry metadata the image belongs to.
func (i *EntryImage) Entry() Entry {
	return i.entry
}

// Source reports which endpoint the entry was resolved from, either
// ModePrimary or ModeMaster.
func (i *EntryImage) Source() Mode {
	return i.source
}

// Download fetches the raw image bytes from the stored URL.
func (i *EntryImage) Download(ctx context.Context) ([]byte, error) {
	return i.api.download(ctx, i.url)
}
