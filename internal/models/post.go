// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Post is a blog entry belonging to exactly one category. The slug is always
// derived from the title on the server. IsDraft doubles as the deletion
// marker: DELETE never removes the row, it flips IsDraft to true.
type Post struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	DateCreated time.Time  `json:"date_created"`
	DateUpdated *time.Time `json:"date_updated"`
	IsDraft     bool       `json:"is_draft"`
	CategoryID  int64      `json:"category_id"`
}
