package request

// AchievementRequest 업적 달성 알림 요청의 jsonData 필드에 담기는 메타데이터입니다.
// 필드명은 클라이언트(가상 테이블탑 애플리케이션)가 전송하는 JSON 키를 그대로 따릅니다.
type AchievementRequest struct {
	// 업적을 달성한 사용자 이름
	UserName string `json:"userName" validate:"required" korean:"사용자 이름(userName)" example:"Alice"`
	// 달성한 업적 이름
	AchievementName string `json:"achievementName" validate:"required" korean:"업적 이름(achievementName)" example:"Dragon Slayer"`
	// 업적에 대한 부가 설명 (선택)
	AchievementDescription string `json:"achievementDescription" korean:"업적 설명(achievementDescription)"`
	// 업적 아이콘 이미지 URL (선택, http(s) URL만 사용됨)
	IconSource string `json:"iconSource" korean:"아이콘 URL(iconSource)"`
}
