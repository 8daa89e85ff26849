package constant

const (
	// SourceKind tags every exported record with the provider family it came from.
	SourceKind = "youtube"

	// ThumbnailTemplate is the thumbnail address of a video; %s is replaced by the raw video identifier.
	ThumbnailTemplate = "https://img.youtube.com/vi/%s/0.jpg"

	// MissingIDPlaceholder is substituted into the thumbnail address when the provider gave no identifier.
	MissingIDPlaceholder = "None"

	// DefaultPlaylistURL is the playlist exported when neither a flag nor the config names one.
	DefaultPlaylistURL = "https://www.youtube.com/playlist?list=PL-n1PCDEHSLUiO5y7roEshvbOCQSb9uVy"

	// DefaultOutput is the file written when neither a flag nor the config names one.
	DefaultOutput = "playlist.json"
)
