package metrics

// IncrementCharacterCreated increments character creation counter
func (m *Metrics) IncrementCharacterCreated() {
	m.safeExecute("IncrementCharacterCreated", func() {
		m.CharacterCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments wall comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementPhotoUploaded adds to the photo upload counter
func (m *Metrics) IncrementPhotoUploaded(count int) {
	m.safeExecute("IncrementPhotoUploaded", func() {
		m.PhotoUploadedTotal.Add(float64(count))
	})
}

// IncrementPhotoLikeToggled increments the like toggle counter
func (m *Metrics) IncrementPhotoLikeToggled() {
	m.safeExecute("IncrementPhotoLikeToggled", func() {
		m.PhotoLikeTogglesTotal.Inc()
	})
}

// IncrementProfileViews adds to the profile view counter
func (m *Metrics) IncrementProfileViews(count int64) {
	m.safeExecute("IncrementProfileViews", func() {
		m.ProfileViewsTotal.Add(float64(count))
	})
}

// SetCharactersTotal sets total characters gauge
func (m *Metrics) SetCharactersTotal(count int64) {
	m.safeExecute("SetCharactersTotal", func() {
		m.CharactersTotal.Set(float64(count))
	})
}

// SetPhotosTotal sets total photos gauge
func (m *Metrics) SetPhotosTotal(count int64) {
	m.safeExecute("SetPhotosTotal", func() {
		m.PhotosTotal.Set(float64(count))
	})
}
