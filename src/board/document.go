package board

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed assets/index.html
var pageHTML []byte

//go:embed assets/styles.css
var Stylesheet []byte

const (
	selectPlaceholder = "-- Select an activity --"
	removeAction      = "/participants/remove"
	confirmDialogID   = "confirm-dialog"
)

// Document is a Surface backed by an HTML node tree parsed from the board page.
// It is not safe for concurrent use; build one per rendered page.
type Document struct {
	root    *html.Node
	body    *html.Node
	list    *html.Node
	options *html.Node
	form    *html.Node
	email   *html.Node
	message *html.Node
}

var _ Surface = (*Document)(nil)

func NewDocument() (*Document, error) {
	root, err := html.Parse(bytes.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse board page: %w", err)
	}

	d := &Document{root: root}
	d.body = findFirst(root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	for id, dst := range map[string]**html.Node{
		ListID:    &d.list,
		SelectID:  &d.options,
		FormID:    &d.form,
		EmailID:   &d.email,
		MessageID: &d.message,
	} {
		*dst = findFirst(root, func(n *html.Node) bool { return attr(n, "id") == id })
		if *dst == nil {
			return nil, fmt.Errorf("board page has no #%s element", id)
		}
	}
	if d.body == nil {
		return nil, fmt.Errorf("board page has no body")
	}
	d.ResetOptions()
	return d, nil
}

// Render writes the whole page.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Element returns the node carrying id, or nil.
func (d *Document) Element(id string) *html.Node {
	return findFirst(d.root, func(n *html.Node) bool { return attr(n, "id") == id })
}

func (d *Document) ShowListPlaceholder(text string) {
	removeChildren(d.list)
	d.list.AppendChild(element(atom.P, text))
}

func (d *Document) ShowListError(text string) {
	removeChildren(d.list)
	d.list.AppendChild(element(atom.P, text, "class", "error"))
}

func (d *Document) ClearList() {
	removeChildren(d.list)
}

func (d *Document) ResetOptions() {
	removeChildren(d.options)
	d.options.AppendChild(element(atom.Option, selectPlaceholder, "value", ""))
}

func (d *Document) AddOption(name string) {
	d.options.AppendChild(element(atom.Option, name, "value", name))
}

func (d *Document) AppendCard(card Card) {
	node := element(atom.Div, "", "class", "activity-card")
	node.AppendChild(element(atom.H4, card.Name))

	details := element(atom.Dl, "", "class", "activity-details")
	addDetail(details, "Description", "detail-description", textNode(card.Description))
	addDetail(details, "When", "detail-schedule", textNode(card.Schedule))
	addDetail(details, "Available Slots", "participant-count", textNode(strconv.Itoa(card.AvailableSlots)))

	if len(card.Participants) > 0 {
		list := element(atom.Ul, "", "class", "participants-list")
		for _, p := range card.Participants {
			item := element(atom.Li, "", "class", "participant")
			item.AppendChild(element(atom.Span, p, "class", "participant-name"))
			item.AppendChild(removeForm(card.Name, p))
			list.AppendChild(item)
		}
		addDetail(details, "Participants", "detail-participants", list)
	}

	node.AppendChild(details)
	d.list.AppendChild(node)
}

func (d *Document) ResetForm() {
	removeAttr(d.email, "value")
	for opt := d.options.FirstChild; opt != nil; opt = opt.NextSibling {
		removeAttr(opt, "selected")
	}
}

// FillForm restores submitted form values so a failed signup keeps them.
func (d *Document) FillForm(email, activity string) {
	setAttr(d.email, "value", email)
	for opt := d.options.FirstChild; opt != nil; opt = opt.NextSibling {
		if opt.Type != html.ElementNode {
			continue
		}
		if activity != "" && attr(opt, "value") == activity {
			setAttr(opt, "selected", "selected")
		} else {
			removeAttr(opt, "selected")
		}
	}
}

func (d *Document) SetMessage(text string, kind Kind) {
	removeChildren(d.message)
	d.message.AppendChild(textNode(text))
	setAttr(d.message, "class", "message "+string(kind))
}

// ShowConfirmation opens a dialog that re-posts the removal with confirm=yes.
// Answering "No" goes back to the board without touching anything.
func (d *Document) ShowConfirmation(prompt Prompt) {
	if old := d.Element(confirmDialogID); old != nil && old.Parent != nil {
		old.Parent.RemoveChild(old)
	}
	dialog := element(atom.Dialog, "", "id", confirmDialogID, "open", "")
	dialog.AppendChild(element(atom.P, prompt.String()))

	form := element(atom.Form, "", "method", "post", "action", removeAction)
	form.AppendChild(element(atom.Input, "", "type", "hidden", "name", "activity", "value", prompt.Activity))
	form.AppendChild(element(atom.Input, "", "type", "hidden", "name", "email", "value", prompt.Email))
	form.AppendChild(element(atom.Input, "", "type", "hidden", "name", "confirm", "value", "yes"))
	form.AppendChild(element(atom.Button, "Yes", "type", "submit"))
	form.AppendChild(element(atom.A, "No", "href", "/"))
	dialog.AppendChild(form)

	d.body.AppendChild(dialog)
}

// Confirmer returns the removal prompt for this page: already confirmed requests
// pass, anything else opens the confirmation dialog and is declined for now.
func (d *Document) Confirmer(confirmed bool) Confirmer {
	return ConfirmFunc(func(_ context.Context, prompt Prompt) bool {
		if confirmed {
			return true
		}
		d.ShowConfirmation(prompt)
		return false
	})
}

func removeForm(activity, email string) *html.Node {
	form := element(atom.Form, "", "class", "delete-form", "method", "post", "action", removeAction)
	form.AppendChild(element(atom.Input, "", "type", "hidden", "name", "activity", "value", activity))
	form.AppendChild(element(atom.Input, "", "type", "hidden", "name", "email", "value", email))
	form.AppendChild(element(atom.Button, "✕", "class", "delete-btn", "type", "submit",
		"aria-label", "Remove "+email))
	return form
}

func addDetail(details *html.Node, label, valueClass string, content *html.Node) {
	details.AppendChild(element(atom.Dt, label, "class", "detail-term"))
	dd := element(atom.Dd, "", "class", valueClass)
	dd.AppendChild(content)
	details.AppendChild(dd)
}
