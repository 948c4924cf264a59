package transport

type GameRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

type GameUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
	Completed   *bool   `json:"completed"`
}

// TaskRequest mirrors the task creation form. MediaLinks is raw text with
// one URL per line, exactly as the client textarea submits it.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Urgency     string `json:"urgency"`
	Assignee    string `json:"assignee"`
	MediaLinks  string `json:"media_links"`
}

type TaskStatusRequest struct {
	Status            string `json:"status"`
	CompletionComment string `json:"completion_comment"`
	CompletedBy       string `json:"completed_by"`
}

type TaskDeleteRequest struct {
	Reason    string `json:"reason"`
	DeletedBy string `json:"deleted_by"`
}

type CommentRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type MemberRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}
