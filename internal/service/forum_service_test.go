package service

import (
	"testing"

	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadLifecycle(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "Ada", "ada@example.com")
	other := env.createUser(t, "Bob", "bob@example.com")

	thread, err := env.forum.CreateThread(author.ID, &CreateThreadRequest{Title: "Hello", Content: "First post"})
	require.NoError(t, err)
	assert.NotEmpty(t, thread.ID)
	assert.Equal(t, author.ID, thread.AuthorID)

	// only the author or an admin may edit
	_, err = env.forum.UpdateThread(other.ID, false, thread.ID, &UpdateThreadRequest{Title: "Hijack", Content: "x"})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	updated, err := env.forum.UpdateThread(other.ID, true, thread.ID, &UpdateThreadRequest{Title: "Moderated", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Title)

	err = env.forum.DeleteThread(other.ID, false, thread.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	require.NoError(t, env.forum.DeleteThread(author.ID, false, thread.ID))
	_, err = env.forum.GetThread(thread.ID)
	assert.ErrorIs(t, err, util.ErrThreadNotFound)
}

func TestPinnedThreadsListFirst(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "Ada", "ada@example.com")

	first, err := env.forum.CreateThread(author.ID, &CreateThreadRequest{Title: "Older", Content: "x"})
	require.NoError(t, err)
	_, err = env.forum.CreateThread(author.ID, &CreateThreadRequest{Title: "Newer", Content: "x"})
	require.NoError(t, err)

	_, err = env.forum.PinThread(first.ID, true)
	require.NoError(t, err)

	threads, err := env.forum.ListThreads()
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, "Older", threads[0].Title)
	assert.True(t, threads[0].Pinned)
}

func TestThreadDeleteCascadesReplies(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "Ada", "ada@example.com")

	thread, err := env.forum.CreateThread(author.ID, &CreateThreadRequest{Title: "T", Content: "x"})
	require.NoError(t, err)

	reply, err := env.forum.CreateReply(author.ID, thread.ID, &ReplyRequest{Content: "me too"})
	require.NoError(t, err)

	require.NoError(t, env.forum.DeleteThread(author.ID, false, thread.ID))

	_, err = env.forum.UpdateReply(author.ID, false, reply.ID, &ReplyRequest{Content: "edit"})
	assert.ErrorIs(t, err, util.ErrReplyNotFound)
}

func TestReplyToMissingThread(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "Ada", "ada@example.com")

	_, err := env.forum.CreateReply(author.ID, "nope", &ReplyRequest{Content: "x"})
	assert.ErrorIs(t, err, util.ErrThreadNotFound)
}

func TestCommentTree(t *testing.T) {
	env := newTestEnv(t)
	ada := env.createUser(t, "Ada", "ada@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	root, err := env.forum.CreateComment(ada.ID, "Ada", "c1", "m1", &CommentRequest{Text: "Great lesson"})
	require.NoError(t, err)
	child, err := env.forum.CreateComment(bob.ID, "Bob", "c1", "m1", &CommentRequest{Text: "Agreed", ParentID: &root.ID})
	require.NoError(t, err)
	_, err = env.forum.CreateComment(ada.ID, "Ada", "c1", "m1", &CommentRequest{Text: "Thanks!", ParentID: &child.ID})
	require.NoError(t, err)

	tree, err := env.forum.ListComments("c1", "m1")
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 1)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, "Thanks!", tree[0].Replies[0].Replies[0].Content)
}

func TestCommentParentMustMatchMaterial(t *testing.T) {
	env := newTestEnv(t)
	ada := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	root, err := env.forum.CreateComment(ada.ID, "Ada", "c1", "m1", &CommentRequest{Text: "On m1"})
	require.NoError(t, err)

	_, err = env.forum.CreateComment(ada.ID, "Ada", "c1", "m2", &CommentRequest{Text: "Wrong material", ParentID: &root.ID})
	assert.ErrorIs(t, err, util.ErrCommentNotFound)
}

func TestCommentSubtreeDelete(t *testing.T) {
	env := newTestEnv(t)
	ada := env.createUser(t, "Ada", "ada@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	root, err := env.forum.CreateComment(ada.ID, "Ada", "c1", "m1", &CommentRequest{Text: "root"})
	require.NoError(t, err)
	child, err := env.forum.CreateComment(bob.ID, "Bob", "c1", "m1", &CommentRequest{Text: "child", ParentID: &root.ID})
	require.NoError(t, err)
	_, err = env.forum.CreateComment(ada.ID, "Ada", "c1", "m1", &CommentRequest{Text: "grandchild", ParentID: &child.ID})
	require.NoError(t, err)
	other, err := env.forum.CreateComment(bob.ID, "Bob", "c1", "m1", &CommentRequest{Text: "unrelated"})
	require.NoError(t, err)

	// Bob cannot delete Ada's comment
	err = env.forum.DeleteComment(bob.ID, false, root.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	require.NoError(t, env.forum.DeleteComment(ada.ID, false, root.ID))

	tree, err := env.forum.ListComments("c1", "m1")
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, other.ID, tree[0].ID)
	assert.Empty(t, tree[0].Replies)
}

func TestCommentEdit(t *testing.T) {
	env := newTestEnv(t)
	ada := env.createUser(t, "Ada", "ada@example.com")
	env.createCourse(t, "c1", "course-one", false, 3)

	comment, err := env.forum.CreateComment(ada.ID, "Ada", "c1", "m1", &CommentRequest{Text: "typo"})
	require.NoError(t, err)

	updated, err := env.forum.UpdateComment(ada.ID, false, comment.ID, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "fixed", updated.Content)
}
