package catalog

var defaultStyles = []Style{
	{
		ID:             "renaissance",
		Name:           "르네상스 로얄",
		Description:    "근엄한 왕자/공주님을 위한 웅장한 귀족 초상화",
		ThumbnailURL:   "https://imgur.com/cGL3mqv.png",
		Category:       "CLASSIC",
		RecommendedFor: "모든 반려동물",
		Tags:           []string{"classic", "oil", "royal"},
	},
	{
		ID:             "oil_painting",
		Name:           "유화 마스터피스",
		Description:    "반 고흐의 숨결이 느껴지는 강렬한 유화 스타일",
		ThumbnailURL:   "https://imgur.com/TFjCgDh.png",
		Category:       "CLASSIC",
		RecommendedFor: "차분한 분위기",
		Tags:           []string{"classic", "oil", "vangogh"},
	},
	{
		ID:             "watercolor",
		Name:           "감성 수채화",
		Description:    "물감이 번지는 듯한 맑고 투명한 수채화 화풍",
		ThumbnailURL:   "https://imgur.com/fsYgjcx.png",
		Category:       "EMOTIONAL",
		RecommendedFor: "밝은 털색의 동물",
		Tags:           []string{"emotional", "watercolor", "soft"},
	},
	{
		ID:             "three_d_animation",
		Name:           "3D 애니메이션",
		Description:    "동화 속 주인공 같은 귀여운 3D 캐릭터 입체 변환",
		ThumbnailURL:   "https://imgur.com/rVfqgfO.png",
		Category:       "MODERN",
		RecommendedFor: "귀여운 외모",
		Tags:           []string{"modern", "3d", "cute", "animation"},
	},
	{
		ID:             "emotional_anime",
		Name:           "감성 애니메이션",
		Description:    "따뜻하고 몽글몽글한 애니메이션 속 한 장면",
		ThumbnailURL:   "https://imgur.com/NVojSk3.png",
		Category:       "EMOTIONAL",
		RecommendedFor: "자연스러운 포즈",
		Tags:           []string{"emotional", "anime", "ghibli"},
	},
	{
		ID:             "sketch",
		Name:           "펜슬 스케치",
		Description:    "연필의 질감이 섬세하게 살아있는 정밀 묘사",
		ThumbnailURL:   "https://imgur.com/dOOR7qu.png",
		Category:       "CLASSIC",
		RecommendedFor: "모든 동물",
		Tags:           []string{"classic", "sketch", "pencil"},
	},
	{
		ID:             "pop_art",
		Name:           "모던 팝아트",
		Description:    "앤디 워홀 스타일의 힙하고 비비드한 예술 작품",
		ThumbnailURL:   "https://imgur.com/3w6czGT.png",
		Category:       "MODERN",
		RecommendedFor: "개성 넘치는 반려동물",
		Tags:           []string{"modern", "popart", "vivid"},
	},
	{
		ID:             "marble_statue",
		Name:           "마블 조각상",
		Description:    "박물관에 전시된 듯한 고귀한 대리석 조각",
		ThumbnailURL:   "https://imgur.com/F2cNs51.png",
		Category:       "CLASSIC",
		RecommendedFor: "조각 같은 외모",
		Tags:           []string{"classic", "statue", "3d"},
	},
	{
		ID:             "cyberpunk",
		Name:           "사이버펑크",
		Description:    "네온 사인이 빛나는 미래 도시 테마",
		ThumbnailURL:   "https://imgur.com/UY2P84Q.png",
		Category:       "MODERN",
		RecommendedFor: "카리스마 있는 모습",
		Tags:           []string{"modern", "cyberpunk", "neon"},
	},
	{
		ID:             "webtoon",
		Name:           "웹툰/만화",
		Description:    "K-웹툰 스타일의 깔끔한 선과 채색",
		ThumbnailURL:   "https://imgur.com/XbmPeG3.png",
		Category:       "MODERN",
		RecommendedFor: "발랄한 캐릭터",
		Tags:           []string{"modern", "webtoon", "comic"},
	},
	{
		ID:             "pixel_art",
		Name:           "픽셀 아트",
		Description:    "레트로 게임 감성이 담긴 도트 그래픽",
		ThumbnailURL:   "https://imgur.com/RYqy1aS.png",
		Category:       "MODERN",
		RecommendedFor: "작고 귀여운 동물",
		Tags:           []string{"modern", "pixel", "retro"},
	},
	{
		ID:             "digital_painting",
		Name:           "디지털 페인팅",
		Description:    "현대적인 감각의 세련된 일러스트레이션",
		ThumbnailURL:   "https://imgur.com/fpdElrr.png",
		Category:       "MODERN",
		RecommendedFor: "매끈한 털의 동물",
		Tags:           []string{"modern", "digital", "illustration"},
	},
}

var defaultPackages = []CreditPackage{
	{ID: "starter", Name: "스타터 팩", Price: 4500, Credits: 5},
	{ID: "standard", Name: "스탠다드 팩", Price: 9900, Credits: 12, Tag: "Best"},
	{ID: "pro", Name: "프로 작가 팩", Price: 19900, Credits: 25, Tag: "Pro"},
}
