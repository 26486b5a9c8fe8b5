package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func findStartedCommand(events []*event.CommandStartedEvent, name string) *event.CommandStartedEvent {
	for _, e := range events {
		if e.CommandName == name {
			return e
		}
	}
	return nil
}

// updateFilter 取出 update 命令里第一条语句的过滤器
func updateFilter(t *mtest.T) bson.Raw {
	t.Helper()
	evt := findStartedCommand(t.GetAllStartedEvents(), "update")
	require.NotNil(t, evt)
	return evt.Command.Lookup("updates").Array().Index(0).Value().Document().Lookup("q").Document()
}

func TestPullCommentOwnershipPredicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("归属条件在过滤器里且未命中不算成功", func(mt *mtest.T) {
		repo := &postRepoImpl{col: mt.Coll}
		postID := primitive.NewObjectID()
		commentID := primitive.NewObjectID()

		// 过滤器未命中：n 为 0。帖子存在但评论归属不匹配就是这种响应。
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		ok, err := repo.PullComment(context.Background(), postID, commentID, 2)
		require.NoError(mt, err)
		assert.False(mt, ok)

		// 评论 ID 与作者必须出现在查询过滤器中，
		// 否则 updated_at 的 $set 会让未摘除的更新也被当作成功
		filter := updateFilter(mt)
		gotPostID, err := filter.LookupErr("_id")
		require.NoError(mt, err)
		assert.Equal(mt, postID, gotPostID.ObjectID())

		gotCommentID, err := filter.LookupErr("comments", "$elemMatch", "_id")
		require.NoError(mt, err)
		assert.Equal(mt, commentID, gotCommentID.ObjectID())

		gotUserID, err := filter.LookupErr("comments", "$elemMatch", "user_id")
		require.NoError(mt, err)
		assert.EqualValues(mt, 2, gotUserID.AsInt64())
	})

	mt.Run("命中时返回成功", func(mt *mtest.T) {
		repo := &postRepoImpl{col: mt.Coll}

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		ok, err := repo.PullComment(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), 3)
		require.NoError(mt, err)
		assert.True(mt, ok)
	})
}

func TestUpdateCommentOwnershipPredicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("编辑与删除共用同一个归属过滤器", func(mt *mtest.T) {
		repo := &postRepoImpl{col: mt.Coll}
		postID := primitive.NewObjectID()
		commentID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		ok, err := repo.UpdateComment(context.Background(), postID, commentID, 5, "edited", time.Now())
		require.NoError(mt, err)
		assert.False(mt, ok)

		filter := updateFilter(mt)
		gotUserID, err := filter.LookupErr("comments", "$elemMatch", "user_id")
		require.NoError(mt, err)
		assert.EqualValues(mt, 5, gotUserID.AsInt64())
	})
}
