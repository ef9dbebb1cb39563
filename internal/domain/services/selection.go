package services

// NoSelection은 선택된 프로파일이 없음을 나타내는 인덱스 값입니다
const NoSelection = -1

// SelectionController는 목록에서 현재 선택된 프로파일의 인덱스를 추적합니다.
// 선택 상태는 영속화되지 않습니다.
type SelectionController struct {
	index int
}

// NewSelectionController는 선택 없음 상태의 SelectionController를 생성합니다
func NewSelectionController() *SelectionController {
	return &SelectionController{index: NoSelection}
}

// Select는 주어진 인덱스를 선택합니다. 음수는 선택 해제로 처리됩니다.
func (s *SelectionController) Select(index int) {
	if index < 0 {
		s.index = NoSelection
		return
	}
	s.index = index
}

// Clear는 선택을 해제합니다. 목록이 변경되어 기존 인덱스의 의미가
// 달라질 수 있는 경우(삭제, 임포트) 반드시 호출되어야 합니다.
func (s *SelectionController) Clear() {
	s.index = NoSelection
}

// Current는 현재 선택된 인덱스를 반환합니다
func (s *SelectionController) Current() (int, bool) {
	if s.index == NoSelection {
		return NoSelection, false
	}
	return s.index, true
}

// HandleRemoval은 인덱스 removed가 목록에서 제거된 뒤의 선택 상태를
// 정리합니다. 제거된 항목이거나 그 뒤를 가리키던 선택은 무효화됩니다.
func (s *SelectionController) HandleRemoval(removed int) {
	if s.index == NoSelection {
		return
	}
	if s.index >= removed {
		s.Clear()
	}
}
