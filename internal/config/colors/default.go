package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset:  "default",
		Accent:  "#874BFD",
		Border:  "#5F87D7",
		Title:   "#D75FD7",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
		Success: "#5FD75F",
		Error:   "#FF0000",
	}
}

// Classic returns the beige and khaki look of the first desktop version
func Classic() *ColorScheme {
	return &ColorScheme{
		Preset:  "classic",
		Accent:  "#F0E68C",
		Border:  "#F5F5DC",
		Title:   "#F0E68C",
		Subtle:  "#A8A39D",
		Normal:  "#F5F5DC",
		Success: "#008000",
		Error:   "#FF0000",
	}
}
