package idgen

// IDGenerator 主键生成接口
type IDGenerator interface {
	NextID() (int64, error)
}
