package model

type ForumThread struct {
	UUIDBase
	Title    string       `gorm:"size:255;not null" json:"title"`
	Content  string       `gorm:"type:text;not null" json:"content"`
	AuthorID uint         `gorm:"index" json:"authorId"`
	Author   User         `gorm:"foreignKey:AuthorID" json:"author"`
	Pinned   bool         `gorm:"default:false" json:"pinned"`
	Replies  []ForumReply `gorm:"foreignKey:ThreadID" json:"replies"`
}

func (ForumThread) TableName() string {
	return "forum_threads"
}

type ForumReply struct {
	UUIDBase
	ThreadID string `gorm:"index;type:varchar(36)" json:"threadId"`
	AuthorID uint   `gorm:"index" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (ForumReply) TableName() string {
	return "forum_replies"
}

// MaterialComment hangs off a course material. Replies nest through
// ParentID; traversal is iterative so depth is unbounded but safe.
type MaterialComment struct {
	UUIDBase
	CourseID   string  `gorm:"index:idx_comment_material;type:varchar(36)" json:"courseId"`
	MaterialID string  `gorm:"index:idx_comment_material;type:varchar(36)" json:"materialId"`
	AuthorID   uint    `gorm:"index" json:"authorId"`
	AuthorName string  `gorm:"size:100" json:"user"`
	Content    string  `gorm:"type:text;not null" json:"text"`
	ParentID   *string `gorm:"index;type:varchar(36)" json:"parentId"`
}

func (MaterialComment) TableName() string {
	return "material_comments"
}
