package application

import "testing"

func TestPaginate_FirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, pageNum, size := Paginate(items, 1, 2)
	if len(page) != 2 || page[0] != 1 || page[1] != 2 {
		t.Errorf("expected [1 2], got %v", page)
	}
	if pageNum != 1 || size != 2 {
		t.Errorf("expected page=1 size=2, got page=%d size=%d", pageNum, size)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, _, _ := Paginate(items, 3, 2)
	if len(page) != 1 || page[0] != 5 {
		t.Errorf("expected [5], got %v", page)
	}
}

func TestPaginate_ZeroPageDefaultsToFirst(t *testing.T) {
	items := []int{1, 2, 3}

	page, pageNum, _ := Paginate(items, 0, 2)
	if pageNum != 1 {
		t.Errorf("expected normalized page 1, got %d", pageNum)
	}
	if len(page) != 2 || page[0] != 1 {
		t.Errorf("expected [1 2], got %v", page)
	}
}

func TestPaginate_ZeroSizeReturnsEverything(t *testing.T) {
	items := []int{1, 2, 3}

	page, _, size := Paginate(items, 1, 0)
	if len(page) != 3 {
		t.Errorf("expected all 3 items, got %v", page)
	}
	if size != 3 {
		t.Errorf("expected normalized size 3, got %d", size)
	}
}

func TestPaginate_StartBeyondEndIsEmptyPage(t *testing.T) {
	items := []int{1, 2, 3}

	page, pageNum, size := Paginate(items, 5, 2)
	if page == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(page) != 0 {
		t.Errorf("expected empty page, got %v", page)
	}
	if pageNum != 5 || size != 2 {
		t.Errorf("expected page=5 size=2 echoed back, got page=%d size=%d", pageNum, size)
	}
}

func TestPaginate_LargePageTimesSizeDoesNotWrap(t *testing.T) {
	items := []int{1, 2, 3}

	// (page-1)*size == 2^31: would wrap negative in int32 arithmetic.
	page, pageNum, size := Paginate(items, 65537, 32768)
	if len(page) != 0 {
		t.Errorf("expected empty page, got %v", page)
	}
	if pageNum != 65537 || size != 32768 {
		t.Errorf("expected page=65537 size=32768 echoed back, got page=%d size=%d", pageNum, size)
	}
}

func TestPaginate_MaxInt32Inputs(t *testing.T) {
	items := []int{1, 2, 3}

	page, _, _ := Paginate(items, 1<<31-1, 1<<31-1)
	if len(page) != 0 {
		t.Errorf("expected empty page, got %v", page)
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	page, _, _ := Paginate([]int{}, 1, 10)
	if len(page) != 0 {
		t.Errorf("expected empty page, got %v", page)
	}
}
