package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type ForumService struct {
	ForumRepo   *repository.ForumRepository
	CommentRepo *repository.CommentRepository
}

func NewForumService(forumRepo *repository.ForumRepository, commentRepo *repository.CommentRepository) *ForumService {
	return &ForumService{ForumRepo: forumRepo, CommentRepo: commentRepo}
}

type CreateThreadRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type UpdateThreadRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type ReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentRequest struct {
	Text     string  `json:"text" binding:"required"`
	ParentID *string `json:"parentId"`
}

// CommentNode is a comment with its replies resolved into a tree.
type CommentNode struct {
	model.MaterialComment
	Replies []*CommentNode `json:"replies"`
}

func (s *ForumService) ListThreads() ([]model.ForumThread, error) {
	return s.ForumRepo.FindThreads()
}

func (s *ForumService) GetThread(id string) (*model.ForumThread, error) {
	thread, err := s.ForumRepo.FindThreadByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrThreadNotFound
		}
		return nil, err
	}
	return thread, nil
}

func (s *ForumService) CreateThread(authorID uint, req *CreateThreadRequest) (*model.ForumThread, error) {
	thread := &model.ForumThread{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if err := s.ForumRepo.CreateThread(thread); err != nil {
		return nil, err
	}
	return s.GetThread(thread.ID)
}

// UpdateThread allows the author or an admin to edit a thread.
func (s *ForumService) UpdateThread(userID uint, isAdmin bool, threadID string, req *UpdateThreadRequest) (*model.ForumThread, error) {
	thread, err := s.GetThread(threadID)
	if err != nil {
		return nil, err
	}
	if thread.AuthorID != userID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}
	thread.Title = req.Title
	thread.Content = req.Content
	if err := s.ForumRepo.UpdateThread(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *ForumService) DeleteThread(userID uint, isAdmin bool, threadID string) error {
	thread, err := s.GetThread(threadID)
	if err != nil {
		return err
	}
	if thread.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ForumRepo.DeleteThread(threadID)
}

// PinThread toggles the pinned flag. Admin only, enforced by the route.
func (s *ForumService) PinThread(threadID string, pinned bool) (*model.ForumThread, error) {
	thread, err := s.GetThread(threadID)
	if err != nil {
		return nil, err
	}
	thread.Pinned = pinned
	if err := s.ForumRepo.UpdateThread(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *ForumService) CreateReply(authorID uint, threadID string, req *ReplyRequest) (*model.ForumReply, error) {
	if _, err := s.GetThread(threadID); err != nil {
		return nil, err
	}
	reply := &model.ForumReply{
		ThreadID: threadID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.ForumRepo.CreateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *ForumService) UpdateReply(userID uint, isAdmin bool, replyID string, req *ReplyRequest) (*model.ForumReply, error) {
	reply, err := s.ForumRepo.FindReplyByID(replyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrReplyNotFound
		}
		return nil, err
	}
	if reply.AuthorID != userID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}
	reply.Content = req.Content
	if err := s.ForumRepo.UpdateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *ForumService) DeleteReply(userID uint, isAdmin bool, replyID string) error {
	reply, err := s.ForumRepo.FindReplyByID(replyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrReplyNotFound
		}
		return err
	}
	if reply.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}
	return s.ForumRepo.DeleteReply(replyID)
}

// ListComments returns the material's comments as a tree. Comments whose
// parent no longer exists surface as roots rather than disappearing.
func (s *ForumService) ListComments(courseID, materialID string) ([]*CommentNode, error) {
	comments, err := s.CommentRepo.FindByMaterial(courseID, materialID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &CommentNode{
			MaterialComment: comments[i],
			Replies:         []*CommentNode{},
		}
	}

	roots := make([]*CommentNode, 0, len(comments))
	for i := range comments {
		node := nodes[comments[i].ID]
		if comments[i].ParentID != nil {
			if parent, ok := nodes[*comments[i].ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}

func (s *ForumService) CreateComment(authorID uint, authorName, courseID, materialID string, req *CommentRequest) (*model.MaterialComment, error) {
	if req.ParentID != nil {
		parent, err := s.CommentRepo.FindByID(*req.ParentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrCommentNotFound
			}
			return nil, err
		}
		if parent.CourseID != courseID || parent.MaterialID != materialID {
			return nil, util.ErrCommentNotFound
		}
	}
	comment := &model.MaterialComment{
		CourseID:   courseID,
		MaterialID: materialID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    req.Text,
		ParentID:   req.ParentID,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *ForumService) UpdateComment(userID uint, isAdmin bool, commentID, text string) (*model.MaterialComment, error) {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCommentNotFound
		}
		return nil, err
	}
	if comment.AuthorID != userID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}
	if err := s.CommentRepo.UpdateContent(commentID, text); err != nil {
		return nil, err
	}
	comment.Content = text
	return comment, nil
}

// DeleteComment removes the comment and its whole reply subtree,
// collected breadth-first so nesting depth does not matter.
func (s *ForumService) DeleteComment(userID uint, isAdmin bool, commentID string) error {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrCommentNotFound
		}
		return err
	}
	if comment.AuthorID != userID && !isAdmin {
		return util.ErrPermissionDenied
	}

	toDelete := []string{commentID}
	frontier := []string{commentID}
	for len(frontier) > 0 {
		children, err := s.CommentRepo.FindChildIDs(frontier)
		if err != nil {
			return err
		}
		toDelete = append(toDelete, children...)
		frontier = children
	}
	return s.CommentRepo.DeleteByIDs(toDelete)
}
