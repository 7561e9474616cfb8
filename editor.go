package codforge

// Editor mutation helpers. The multi-tab editor updates one field at a
// time and persists the whole document afterwards, so each helper keeps
// the document's invariants local to the touched field.

// SetFormFieldEnabled toggles a checkout form field. Disabling a field
// also clears its required flag so a hidden field can never block
// submission.
func (d *ContentDocument) SetFormFieldEnabled(id FormFieldID, enabled bool) {
	for i := range d.FormConfiguration {
		if d.FormConfiguration[i].ID != id {
			continue
		}
		d.FormConfiguration[i].Enabled = enabled
		if !enabled {
			d.FormConfiguration[i].Required = false
		}
		return
	}
}

// SetFormFieldRequired marks a field required. A disabled field stays
// optional regardless.
func (d *ContentDocument) SetFormFieldRequired(id FormFieldID, required bool) {
	for i := range d.FormConfiguration {
		if d.FormConfiguration[i].ID != id {
			continue
		}
		if required && !d.FormConfiguration[i].Enabled {
			return
		}
		d.FormConfiguration[i].Required = required
		return
	}
}

// SetFormFieldLabel renames a field's visible label.
func (d *ContentDocument) SetFormFieldLabel(id FormFieldID, label string) {
	for i := range d.FormConfiguration {
		if d.FormConfiguration[i].ID == id {
			d.FormConfiguration[i].Label = label
			return
		}
	}
}

// AppendGalleryImage appends an image to the gallery unless an exact
// duplicate is already present. It reports whether the gallery changed.
func (d *ContentDocument) AppendGalleryImage(image string) bool {
	if image == "" {
		return false
	}
	for _, existing := range d.GalleryImages {
		if existing == image {
			return false
		}
	}
	d.GalleryImages = append(d.GalleryImages, image)
	return true
}

// RemoveGalleryImage drops the image at index i, keeping order.
func (d *ContentDocument) RemoveGalleryImage(i int) {
	if i < 0 || i >= len(d.GalleryImages) {
		return
	}
	d.GalleryImages = append(d.GalleryImages[:i], d.GalleryImages[i+1:]...)
}

// OverrideLabels applies per-document microcopy overrides on top of the
// document's current bundle.
func (d *ContentDocument) OverrideLabels(overrides UILabels) {
	if d.Labels == nil {
		d.Labels = &overrides
		return
	}
	merged := MergeLabels(*d.Labels, overrides)
	d.Labels = &merged
}
