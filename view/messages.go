package view

var zhMessages = map[string]string{
	"brand": "AI WRITER",

	"nav.home":     "首页",
	"nav.generate": "生成文章",
	"nav.gallery":  "作品画廊",

	"meta.title":       "AI Writer - 智能写作系统 | 个人作品展示",
	"meta.description": "基于 Claude 和 Gemini 的下一代 AI 写作系统，支持多源调研和 KAFKA 风格配图生成",
	"meta.keywords":    "AI写作, Claude, Gemini, Next.js, 作品展示",
	"og.title":         "AI Writer - 智能写作系统",
	"og.description":   "基于 AI 的智能写作系统",

	"toast.close": "关闭",
	"loading":     "加载中...",

	"home.hero.subtitle":         "智能写作系统 v1.0",
	"home.hero.tagline":          "基于 AI 的下一代内容生成平台",
	"home.cta.start":             "开始使用",
	"home.cta.gallery":           "查看作品",
	"home.feature.research":      "多源智能调研",
	"home.feature.research.desc": "Web 搜索、微信公众号、小红书、学术论文，全网智能调研",
	"home.feature.claude":        "Claude 驱动生成",
	"home.feature.claude.desc":   "基于 Claude 3.5 的强大能力，生成高质量深度内容",
	"home.feature.images":        "KAFKA 风格配图",
	"home.feature.images.desc":   "Gemini 驱动，生成独特的 KAFKA 极简风格配图",
	"home.feature.export":        "多格式智能导出",
	"home.feature.export.desc":   "支持 PDF、HTML、Markdown、小红书等多种格式导出",
	"home.stats.articles":        "已生成文章",
	"home.stats.articles.unit":   "篇",
	"home.stats.users":           "服务用户",
	"home.stats.users.unit":      "人",
	"home.stats.rate":            "好评率",
	"home.stats.rate.unit":       "%",
	"home.tech.title":            "技术栈",
	"home.tech.subtitle":         "Built with cutting-edge technologies",
	"home.footer.made":           "Made with ❤️ by",
	"home.footer.rights":         "© 2024 AI Writer. All rights reserved.",

	"generate.title":             "创建新文章",
	"generate.subtitle":          "基于 AI 的智能内容生成",
	"generate.topic":             "📝 文章主题",
	"generate.topic.placeholder": "例如：大语言模型的发展趋势",
	"generate.tier":              "📊 字数档位",
	"generate.tier.label":        "%s 档",
	"generate.tier.desc":         "%s 字",
	"generate.formats":           "📦 输出格式",
	"generate.tips":              "💡 提示",
	"generate.tips.duration":     "生成过程约需要 2-5 分钟",
	"generate.tips.research":     "会进行多源调研，生成配图",
	"generate.tips.gallery":      "完成后会自动保存到作品画廊",
	"generate.submit":            "🚀 开始生成",
	"generate.submitting":        "正在创建任务...",
	"generate.topic_required":    "请输入文章主题",
	"generate.format_required":   "请至少选择一种输出格式",
	"generate.invalid_tier":      "请选择有效的字数档位",
	"generate.invalid_format":    "包含不支持的输出格式",
	"generate.created":           "文章生成任务已创建！",
	"generate.failed":            "生成失败，请稍后重试",
	"generate.rate_limited":      "请求过于频繁，请稍后再试",

	"format.markdown":    "Markdown",
	"format.pdf":         "PDF",
	"format.html":        "HTML",
	"format.xiaohongshu": "小红书",

	"gallery.title":            "作品画廊",
	"gallery.subtitle":         "AI 生成的智能内容",
	"gallery.filter.all":       "全部",
	"gallery.filter.completed": "已完成",
	"gallery.filter.pending":   "生成中",
	"gallery.empty":            "暂无文章",
	"gallery.empty.cta":        "立即创建第一篇文章 →",
	"gallery.load_failed":      "获取文章列表失败",
	"gallery.badge.completed":  "已完成",
	"gallery.badge.failed":     "失败",
	"gallery.badge.pending":    "生成中",
	"gallery.tier":             "%s 档",
	"gallery.completed_at":     "完成于 %s",
	"gallery.created_at":       "创建于 %s",
	"gallery.view":             "查看详情 →",
	"gallery.progress":         "查看进度 →",

	"article.not_found":         "文章不存在",
	"article.fetch_failed":      "获取文章信息失败",
	"article.failed":            "生成失败",
	"article.unknown_error":     "未知错误",
	"article.retry":             "返回重新生成",
	"article.back":              "← 返回作品画廊",
	"article.generated_at":      "生成时间: %s",
	"article.tier":              "字数档位: %s",
	"article.download.pdf":      "下载 PDF",
	"article.download.markdown": "下载 Markdown",
	"article.progress.title":    "正在生成文章...",
	"article.topic":             "文章主题",
	"article.processing":        "处理中...",
	"article.hint":              "生成过程约需要 2-5 分钟，您可以关闭此页面，稍后回来查看结果",
	"article.download_failed":   "下载失败，请稍后重试",

	"status.pending":           "等待开始",
	"status.researching":       "正在调研...",
	"status.writing":           "AI 生成内容中...",
	"status.generating_images": "生成配图中...",
	"status.integrating":       "整合内容...",
	"status.completed":         "已完成",
	"status.failed":            "生成失败",
	"status.unknown":           "状态未知",

	"step.researching":       "完成多源调研",
	"step.writing":           "完成 AI 内容生成",
	"step.generating_images": "生成 KAFKA 风格配图",
	"step.integrating":       "整合和导出",

	"error.not_found": "页面不存在",
	"error.internal":  "服务器开小差了，请稍后再试",
	"error.back_home": "返回首页",
}

var enMessages = map[string]string{
	"nav.home":     "Home",
	"nav.generate": "Generate",
	"nav.gallery":  "Gallery",

	"meta.title":       "AI Writer - Intelligent Writing System | Portfolio",
	"meta.description": "A next-generation AI writing system built on Claude and Gemini, with multi-source research and KAFKA-style illustrations",
	"meta.keywords":    "AI writing, Claude, Gemini, Next.js, portfolio",
	"og.title":         "AI Writer - Intelligent Writing System",
	"og.description":   "An AI-powered writing system",

	"toast.close": "Close",
	"loading":     "Loading...",

	"home.hero.subtitle":         "Intelligent Writing System v1.0",
	"home.hero.tagline":          "The next-generation AI content platform",
	"home.cta.start":             "Get started",
	"home.cta.gallery":           "View works",
	"home.feature.research":      "Multi-source research",
	"home.feature.research.desc": "Web search, WeChat articles, Xiaohongshu and papers, researched for you",
	"home.feature.claude":        "Powered by Claude",
	"home.feature.claude.desc":   "High-quality long-form content on top of Claude 3.5",
	"home.feature.images":        "KAFKA-style images",
	"home.feature.images.desc":   "Minimalist KAFKA-style illustrations generated with Gemini",
	"home.feature.export":        "Multi-format export",
	"home.feature.export.desc":   "Export to PDF, HTML, Markdown and Xiaohongshu",
	"home.stats.articles":        "Articles generated",
	"home.stats.articles.unit":   "",
	"home.stats.users":           "Users served",
	"home.stats.users.unit":      "",
	"home.stats.rate":            "Satisfaction",
	"home.tech.title":            "Tech stack",

	"generate.title":             "Create a new article",
	"generate.subtitle":          "AI-powered content generation",
	"generate.topic":             "📝 Topic",
	"generate.topic.placeholder": "e.g. Trends in large language models",
	"generate.tier":              "📊 Length tier",
	"generate.tier.label":        "Tier %s",
	"generate.tier.desc":         "%s words",
	"generate.formats":           "📦 Output formats",
	"generate.tips":              "💡 Tips",
	"generate.tips.duration":     "Generation takes about 2-5 minutes",
	"generate.tips.research":     "Includes multi-source research and illustrations",
	"generate.tips.gallery":      "Finished articles are saved to the gallery",
	"generate.submit":            "🚀 Generate",
	"generate.submitting":        "Creating task...",
	"generate.topic_required":    "Please enter a topic",
	"generate.format_required":   "Please select at least one output format",
	"generate.invalid_tier":      "Please choose a valid length tier",
	"generate.invalid_format":    "Unsupported output format",
	"generate.created":           "Generation task created!",
	"generate.failed":            "Generation failed, please try again later",
	"generate.rate_limited":      "Too many requests, please try again later",

	"format.xiaohongshu": "Xiaohongshu",

	"gallery.title":            "Gallery",
	"gallery.subtitle":         "Content generated by AI",
	"gallery.filter.all":       "All",
	"gallery.filter.completed": "Completed",
	"gallery.filter.pending":   "In progress",
	"gallery.empty":            "No articles yet",
	"gallery.empty.cta":        "Create your first article →",
	"gallery.load_failed":      "Failed to load articles",
	"gallery.badge.completed":  "Completed",
	"gallery.badge.failed":     "Failed",
	"gallery.badge.pending":    "In progress",
	"gallery.tier":             "Tier %s",
	"gallery.completed_at":     "Completed %s",
	"gallery.created_at":       "Created %s",
	"gallery.view":             "View →",
	"gallery.progress":         "View progress →",

	"article.not_found":         "Article not found",
	"article.fetch_failed":      "Failed to load article",
	"article.failed":            "Generation failed",
	"article.unknown_error":     "Unknown error",
	"article.retry":             "Try again",
	"article.back":              "← Back to gallery",
	"article.generated_at":      "Generated: %s",
	"article.tier":              "Tier: %s",
	"article.download.pdf":      "Download PDF",
	"article.download.markdown": "Download Markdown",
	"article.progress.title":    "Generating article...",
	"article.topic":             "Topic",
	"article.processing":        "Processing...",
	"article.hint":              "Generation takes about 2-5 minutes. You can close this page and come back later.",
	"article.download_failed":   "Download failed, please try again later",

	"status.pending":           "Waiting to start",
	"status.researching":       "Researching...",
	"status.writing":           "AI is writing...",
	"status.generating_images": "Generating images...",
	"status.integrating":       "Integrating content...",
	"status.completed":         "Completed",
	"status.failed":            "Failed",
	"status.unknown":           "Unknown status",

	"step.researching":       "Multi-source research",
	"step.writing":           "AI content generation",
	"step.generating_images": "KAFKA-style illustrations",
	"step.integrating":       "Integration and export",

	"error.not_found": "Page not found",
	"error.internal":  "Something went wrong, please try again later",
	"error.back_home": "Back to home",
}
