package redis

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-comments/domain"
)

const (
	KeyArticleBloom = "bloom:article:ids"

	defaultBloomHashes = 3
)

// redisBloomRepo keeps a bloom filter of ids in one redis bitmap. Offsets
// come from double hashing: h1 + i*h2 over the FNV-64a digest halves.
type redisBloomRepo struct {
	client *redis.Client
	key    string
	bits   uint64
	hashes int
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	if bitSize == 0 {
		bitSize = 1
	}
	return &redisBloomRepo{
		client: client,
		key:    KeyArticleBloom,
		bits:   bitSize,
		hashes: defaultBloomHashes,
	}
}

func (r *redisBloomRepo) offsets(id int64) []int64 {
	h := fnv.New64a()
	_, _ = h.Write(strconv.AppendInt(nil, id, 10))
	sum := h.Sum64()
	h1, h2 := sum&0xffffffff, sum>>32|1

	res := make([]int64, r.hashes)
	for i := range res {
		res[i] = int64((h1 + uint64(i)*h2) % r.bits)
	}
	return res
}

func (r *redisBloomRepo) Add(ctx context.Context, id int64) error {
	return r.BulkAdd(ctx, []int64{id})
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, r.key, offset, 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, 0, r.hashes)
	for _, offset := range r.offsets(id) {
		cmds = append(cmds, pipe.GetBit(ctx, r.key, offset))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}
