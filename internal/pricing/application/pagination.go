package application

// Paginate 对全量结果做无状态的偏移切片
// page<=0 按第 1 页处理；size<=0 表示不分页（一页返回全部）。
// 起点越过结果集末尾时返回空页，不视为错误。
// 返回归一化后的 page 与 size，供响应回显。
func Paginate[T any](items []T, page, size int32) ([]T, int32, int32) {
	total := int32(len(items))

	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = total
	}

	// 偏移用 int64 计算，避免 page*size 在 int32 下回绕成负数
	start := int64(page-1) * int64(size)
	if start >= int64(total) {
		return []T{}, page, size
	}

	end := start + int64(size)
	if end > int64(total) {
		end = int64(total)
	}

	return items[start:end], page, size
}
