// File: locale/strings.go
package locale

// Strings is every translatable label the pages render.
type Strings struct {
	LangSwitch string // label of the toggle, names the other language

	NavHome      string
	NavRegister  string
	NavStandings string
	NavAdmin     string

	HeroTitle    string
	HeroSubtitle string
	RegisterNow  string
	LeagueIcons  string
	NoFeatured   string
	Gallery      string
	NoGallery    string

	Name       string
	Phone      string
	Wechat     string
	Photo      string
	Submit     string
	SuccessMsg string
	Stats      [6]string
	Overall    string

	Standings    string
	Rank         string
	Team         string
	Played       string
	Won          string
	Drawn        string
	Lost         string
	GoalsFor     string
	GoalsAgainst string
	GoalDiff     string
	Points       string
	ChampionNote string

	AdminAuthTitle  string
	Password        string
	Login           string
	Logout          string
	WrongPassword   string
	AdminPanel      string
	PendingRequests string
	Teams           string
	Players         string
	NameAr          string
	NameZh          string
	Approve         string
	Reject          string
	Delete          string
	Feature         string
	Unfeature       string
	Unassigned      string
	Assign          string
	Save            string
	Upload          string
	Caption         string
	RosterFull      string
	UploadTooLarge  string
	NoPending       string
	Status          string
}

var ar = Strings{
	LangSwitch: "中文",

	NavHome:      "الرئيسية",
	NavRegister:  "التسجيل",
	NavStandings: "الترتيب",
	NavAdmin:     "الإدارة",

	HeroTitle:    "دوري الجالية اليمنية لكرة القدم",
	HeroSubtitle: "دوري الطلاب اليمنيين في الصين",
	RegisterNow:  "سجّل الآن",
	LeagueIcons:  "نجوم الدوري",
	NoFeatured:   "سيتم عرض أفضل اللاعبين قريباً.",
	Gallery:      "لحظات المباريات",
	NoGallery:    "لا توجد صور بعد.",

	Name:       "الاسم",
	Phone:      "رقم الهاتف",
	Wechat:     "معرّف وي تشات",
	Photo:      "الصورة الشخصية",
	Submit:     "إرسال الطلب",
	SuccessMsg: "تم إرسال طلبك بنجاح! بانتظار موافقة الإدارة.",
	Stats:      [6]string{"سرعة", "تسديد", "تمرير", "مراوغة", "دفاع", "بدني"},
	Overall:    "التقييم",

	Standings:    "جدول الترتيب",
	Rank:         "#",
	Team:         "الفريق",
	Played:       "لعب",
	Won:          "فوز",
	Drawn:        "تعادل",
	Lost:         "خسارة",
	GoalsFor:     "له",
	GoalsAgainst: "عليه",
	GoalDiff:     "الفارق",
	Points:       "النقاط",
	ChampionNote: "تتأهل الفرق الأولى إلى النهائيات.",

	AdminAuthTitle:  "دخول الإدارة",
	Password:        "كلمة المرور",
	Login:           "دخول",
	Logout:          "خروج",
	WrongPassword:   "كلمة المرور غير صحيحة",
	AdminPanel:      "لوحة الإدارة",
	PendingRequests: "طلبات التسجيل",
	Teams:           "الفرق",
	Players:         "اللاعبون",
	NameAr:          "الاسم بالعربية",
	NameZh:          "الاسم بالصينية",
	Approve:         "قبول",
	Reject:          "رفض",
	Delete:          "حذف",
	Feature:         "تمييز",
	Unfeature:       "إلغاء التمييز",
	Unassigned:      "بدون فريق",
	Assign:          "تعيين",
	Save:            "حفظ",
	Upload:          "رفع صورة",
	Caption:         "الوصف",
	RosterFull:      "هذا الفريق مكتمل (7 لاعبين)",
	UploadTooLarge:  "الملف كبير جدًا.",
	NoPending:       "لا توجد طلبات معلقة.",
	Status:          "الحالة",
}

var zh = Strings{
	LangSwitch: "العربية",

	NavHome:      "首页",
	NavRegister:  "报名",
	NavStandings: "积分榜",
	NavAdmin:     "管理",

	HeroTitle:    "也门社区足球联赛",
	HeroSubtitle: "在华也门学生足球联赛",
	RegisterNow:  "立即报名",
	LeagueIcons:  "联赛明星",
	NoFeatured:   "即将展示顶尖球员。",
	Gallery:      "比赛瞬间",
	NoGallery:    "暂无照片。",

	Name:       "姓名",
	Phone:      "电话",
	Wechat:     "微信号",
	Photo:      "个人照片",
	Submit:     "提交申请",
	SuccessMsg: "报名成功！请等待管理员审核。",
	Stats:      [6]string{"速度", "射门", "传球", "盘带", "防守", "体能"},
	Overall:    "综合",

	Standings:    "积分榜",
	Rank:         "#",
	Team:         "球队",
	Played:       "场次",
	Won:          "胜",
	Drawn:        "平",
	Lost:         "负",
	GoalsFor:     "进球",
	GoalsAgainst: "失球",
	GoalDiff:     "净胜球",
	Points:       "积分",
	ChampionNote: "排名靠前的球队晋级总决赛。",

	AdminAuthTitle:  "管理员登录",
	Password:        "密码",
	Login:           "登录",
	Logout:          "退出",
	WrongPassword:   "密码错误",
	AdminPanel:      "管理面板",
	PendingRequests: "报名申请",
	Teams:           "球队",
	Players:         "球员",
	NameAr:          "阿拉伯语名称",
	NameZh:          "中文名称",
	Approve:         "批准",
	Reject:          "拒绝",
	Delete:          "删除",
	Feature:         "设为明星",
	Unfeature:       "取消明星",
	Unassigned:      "未分配",
	Assign:          "分配",
	Save:            "保存",
	Upload:          "上传照片",
	Caption:         "说明",
	RosterFull:      "该队已满（7人）",
	UploadTooLarge:  "文件过大。",
	NoPending:       "暂无待审核申请。",
	Status:          "状态",
}
