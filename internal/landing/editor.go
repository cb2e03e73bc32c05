// Package landing holds the admin landing-page customizer state. Content
// lives only for the admin session; "save" replaces the in-memory document
// and nothing is persisted.
package landing

import (
	"sync"

	"shopweaver/internal/domain"
)

// DefaultContent is what a fresh admin session starts from.
func DefaultContent() domain.LandingContent {
	return domain.LandingContent{
		HeroTitle:    "Launch your store in minutes",
		HeroSubtitle: "Pick a theme, load your catalog, start selling",
		HeroImage:    "media/landing/hero.jpg",
		CTALabel:     "Get started",
		CTAURL:       "/signup",
		Features: []domain.Feature{
			{Title: "Eight themes", Description: "Swap the whole storefront look with one setting", Icon: "palette"},
			{Title: "Built-in POS", Description: "Sell in person from the same catalog", Icon: "register"},
			{Title: "Multi-currency", Description: "Prices display in each store's currency", Icon: "coins"},
		},
	}
}

// Editor keys one content document per admin session.
type Editor struct {
	mu   sync.Mutex
	docs map[string]domain.LandingContent
}

func NewEditor() *Editor {
	return &Editor{docs: map[string]domain.LandingContent{}}
}

// Content returns the session's document, seeding the default on first read.
func (e *Editor) Content(sid string) domain.LandingContent {
	e.mu.Lock()
	defer e.mu.Unlock()
	if doc, ok := e.docs[sid]; ok {
		return doc
	}
	doc := DefaultContent()
	e.docs[sid] = doc
	return doc
}

// SetContent replaces the whole document; edits are full-document writes.
func (e *Editor) SetContent(sid string, doc domain.LandingContent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.docs[sid] = doc
}

// Reset drops the session's edits back to the default.
func (e *Editor) Reset(sid string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.docs, sid)
}
