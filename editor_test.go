package codforge

import "testing"

func TestDisablingFieldClearsRequired(t *testing.T) {
	doc := ContentDocument{FormConfiguration: DefaultFormConfig(GetLocale("Italiano"))}

	for _, id := range []FormFieldID{FieldName, FieldPhone, FieldAddress, FieldCity, FieldPostal, FieldEmail, FieldNotes} {
		doc.SetFormFieldRequired(id, true)
		doc.SetFormFieldEnabled(id, false)
		for _, f := range doc.FormConfiguration {
			if f.ID == id && f.Required {
				t.Errorf("field %q still required after disable", id)
			}
		}
	}
}

func TestRequiredRefusedWhileDisabled(t *testing.T) {
	doc := ContentDocument{FormConfiguration: DefaultFormConfig(GetLocale("Inglese"))}
	doc.SetFormFieldRequired(FieldEmail, true)
	for _, f := range doc.FormConfiguration {
		if f.ID == FieldEmail && f.Required {
			t.Error("disabled email field accepted required=true")
		}
	}

	doc.SetFormFieldEnabled(FieldEmail, true)
	doc.SetFormFieldRequired(FieldEmail, true)
	found := false
	for _, f := range doc.FormConfiguration {
		if f.ID == FieldEmail {
			found = f.Required
		}
	}
	if !found {
		t.Error("enabled email field rejected required=true")
	}
}

func TestAppendGalleryImageDeduplicates(t *testing.T) {
	var doc ContentDocument
	if !doc.AppendGalleryImage("img-a") {
		t.Error("first append rejected")
	}
	if doc.AppendGalleryImage("img-a") {
		t.Error("duplicate append accepted")
	}
	if !doc.AppendGalleryImage("img-b") {
		t.Error("distinct append rejected")
	}
	if doc.AppendGalleryImage("") {
		t.Error("empty image accepted")
	}
	if len(doc.GalleryImages) != 2 {
		t.Errorf("gallery = %v", doc.GalleryImages)
	}

	doc.RemoveGalleryImage(0)
	if len(doc.GalleryImages) != 1 || doc.GalleryImages[0] != "img-b" {
		t.Errorf("after remove: %v", doc.GalleryImages)
	}
	doc.RemoveGalleryImage(5) // out of range is a no-op
	if len(doc.GalleryImages) != 1 {
		t.Errorf("out-of-range remove changed gallery: %v", doc.GalleryImages)
	}
}

func TestOverrideLabels(t *testing.T) {
	doc := Complete(ContentDocument{}, GetLocale("Italiano"))
	doc.OverrideLabels(UILabels{CompleteOrder: "Ordina Subito"})
	if doc.Labels.CompleteOrder != "Ordina Subito" {
		t.Errorf("override lost: %q", doc.Labels.CompleteOrder)
	}
	if doc.Labels.COD == "" {
		t.Error("existing labels cleared by override")
	}
}
