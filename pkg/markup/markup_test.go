package markup

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestElRendersOrderedStyleAndSkipsEmpty(t *testing.T) {
	node := El("button",
		Class("btn", "", "btn-primary"),
		Style(D("border-radius", "12px"), D("background-color", ""), D("color", "red")),
		Flag("disabled", false),
		Text("Save"),
	)
	got, err := Render(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<button class="btn btn-primary" style="border-radius: 12px; color: red;">Save</button>`
	if got != want {
		t.Fatalf("unexpected markup\nwant %s\n got %s", want, got)
	}
}

func TestStyleAppendsAcrossParts(t *testing.T) {
	node := El("div", Style(D("a", "1")), Style(D("b", "2")))
	if got := GetAttr(node, "style"); got != "a: 1; b: 2;" {
		t.Fatalf("unexpected style %q", got)
	}
}

func TestStyleWithoutDeclarationsOmitsAttribute(t *testing.T) {
	node := El("div", Style(D("color", "")))
	if HasAttr(node, "style") {
		t.Fatalf("expected no style attribute, got %q", GetAttr(node, "style"))
	}
}

func TestTextIsEscaped(t *testing.T) {
	got, err := Render(El("span", Text("<b>&")))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "&lt;b&gt;&amp;") {
		t.Fatalf("expected escaped text, got %s", got)
	}
}

func TestFindHelpers(t *testing.T) {
	root := El("div",
		Kids(
			El("input", Attr("type", "radio"), Attr("value", "A")),
			nil,
			El("input", Attr("type", "radio"), Attr("value", "B"), Flag("checked", true)),
		),
	)
	checked := Find(root, func(n *html.Node) bool { return HasAttr(n, "checked") })
	if checked == nil || GetAttr(checked, "value") != "B" {
		t.Fatalf("expected checked radio B, got %#v", checked)
	}
	if got := len(FindAll(root, ByTag("input"))); got != 2 {
		t.Fatalf("expected 2 inputs, got %d", got)
	}
	if Find(root, ByAttr("value", "C")) != nil {
		t.Fatalf("expected no match for C")
	}
}
